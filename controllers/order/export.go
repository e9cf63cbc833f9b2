package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcel streams all orders as an .xlsx download for the
// admin dashboard.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("order_date DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserID", "Date", "Status", "Total", "PaymentMethod",
			"Customer", "Email", "Phone", "City", "State", "Items",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02"))
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(strings.TrimSpace(o.ShippingFirstName + " " + o.ShippingLastName))
			row.AddCell().SetValue(o.ShippingEmail)
			row.AddCell().SetValue(o.ShippingPhone)
			row.AddCell().SetValue(o.ShippingCity)
			row.AddCell().SetValue(o.ShippingState)

			var itemSummaries []string
			for _, item := range o.Items {
				itemSummaries = append(itemSummaries, item.Name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(itemSummaries, ", "))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
