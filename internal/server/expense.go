package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
)

type createExpenseRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	ExpenseDate string `json:"expense_date"`
	Category    string `json:"category"`
}

func (s *Server) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	expenseDate, err := parseDate(req.ExpenseDate)
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}

	resp, err := s.engine.ProcessExpense(c.Request.Context(), accountingdomain.ExpenseRequest{
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Category:    req.Category,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListExpenses(c *gin.Context) {
	startDate, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}
	endDate, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}

	resp, err := s.expenseSvc.List(c.Request.Context(), expensedomain.ListRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
