package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/stockbook/internal/migration"
	"github.com/smallbiznis/stockbook/internal/server"
	"github.com/smallbiznis/stockbook/pkg/db"
	"github.com/smallbiznis/stockbook/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
