package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"eggfarm/pkg/query"
)

type ExportService interface {
	// Workbook builds one sheet per table with every row of q. Callers close the file.
	Workbook(ctx context.Context, q query.Range) (*excelize.File, error)
}
