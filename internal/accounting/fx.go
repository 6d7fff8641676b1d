package accounting

import (
	"github.com/smallbiznis/stockbook/internal/accounting/service"
	"github.com/smallbiznis/stockbook/internal/ledger"
	"github.com/smallbiznis/stockbook/internal/stock"
	"go.uber.org/fx"
)

var Module = fx.Module("accounting.engine",
	ledger.Module,
	stock.Module,
	fx.Provide(service.NewEngine),
)
