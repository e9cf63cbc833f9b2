package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestExportOrdersToExcel(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	r.GET("/orders/export-excel", ExportOrdersToExcel(db))

	require.Equal(t, http.StatusOK, doJSON(t, r, "POST", "/orders", validOrderBody("ORD-500001")).Code)

	req := httptest.NewRequest("GET", "/orders/export-excel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders.xlsx")

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())

	row := sheet.Rows[1]
	assert.Equal(t, "ORD-500001", row.Cells[0].String())
	assert.Equal(t, string(models.OrderStatusPending), row.Cells[3].String())
	assert.Equal(t, "Asha Nair", row.Cells[6].String())
	assert.Contains(t, row.Cells[11].String(), "Aurelia Bangle x2")
}
