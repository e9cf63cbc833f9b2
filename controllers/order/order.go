package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/mailer"
	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaxRate is the flat tax applied on the cart subtotal at checkout.
const TaxRate = 0.03

var ErrOrderNotFound = errors.New("order not found")

// -------- Request / Response Structs --------

type ShippingDetailsRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
}

type OrderItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Image    string  `json:"image"`
}

type PlaceOrderRequest struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId" binding:"required"`
	Date            string                 `json:"date"`
	Total           int                    `json:"total" binding:"required,gt=0"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
	ShippingDetails ShippingDetailsRequest `json:"shippingDetails" binding:"required"`
	Items           []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`

	// Present on the online-payment path only. Logged when persistence
	// fails after a successful capture, so the window can be reconciled
	// against the gateway dashboard by hand.
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type shippingDetailsResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

type orderResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"userId"`
	Date            string                  `json:"date"`
	Status          models.OrderStatus      `json:"status"`
	Total           int                     `json:"total"`
	PaymentMethod   string                  `json:"paymentMethod"`
	ShippingDetails shippingDetailsResponse `json:"shippingDetails"`
	Items           []models.OrderItem      `json:"items"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusPending)):
		return models.OrderStatusPending, nil
	case strings.ToLower(string(models.OrderStatusProcessing)):
		return models.OrderStatusProcessing, nil
	case strings.ToLower(string(models.OrderStatusShipped)):
		return models.OrderStatusShipped, nil
	case strings.ToLower(string(models.OrderStatusDelivered)):
		return models.OrderStatusDelivered, nil
	case strings.ToLower(string(models.OrderStatusCancelled)):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// NewOrderID builds a human-readable order id: configurable prefix plus a
// random 6-digit suffix. Not globally unique; the primary key constraint
// turns a collision into a visible insert error.
func NewOrderID() string {
	prefix := os.Getenv("ORDER_ID_PREFIX")
	if prefix == "" {
		prefix = "ORD-"
	}
	return fmt.Sprintf("%s%d", prefix, 100000+rand.Intn(900000))
}

// ComputeTotal returns the tax-inclusive total in whole Rupees for a cart.
func ComputeTotal(items []OrderItemRequest) int {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return int(math.Round(subtotal * (1 + TaxRate)))
}

func parseOrderDate(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	return time.Now().Truncate(24 * time.Hour)
}

func toOrderResponse(o models.Order) orderResponse {
	items := o.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	return orderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Date:          o.OrderDate.Format("2006-01-02"),
		Status:        o.Status,
		Total:         o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		ShippingDetails: shippingDetailsResponse{
			FirstName: o.ShippingFirstName,
			LastName:  o.ShippingLastName,
			Email:     o.ShippingEmail,
			Phone:     o.ShippingPhone,
			Address:   o.ShippingAddress,
			City:      o.ShippingCity,
			State:     o.ShippingState,
			Zip:       o.ShippingZip,
		},
		Items: items,
	}
}

// -------- Core Logic --------

// PlaceOrder persists the order header and its line-item snapshot in one
// transaction, so a partial write cannot leave a header without items.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (models.Order, error) {
	orderID := req.ID
	if orderID == "" {
		orderID = NewOrderID()
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	order := models.Order{
		ID:                orderID,
		UserID:            req.UserID,
		OrderDate:         parseOrderDate(req.Date),
		Status:            models.OrderStatusPending,
		TotalAmount:       req.Total,
		PaymentMethod:     req.PaymentMethod,
		ShippingFirstName: req.ShippingDetails.FirstName,
		ShippingLastName:  req.ShippingDetails.LastName,
		ShippingEmail:     req.ShippingDetails.Email,
		ShippingPhone:     req.ShippingDetails.Phone,
		ShippingAddress:   req.ShippingDetails.Address,
		ShippingCity:      req.ShippingDetails.City,
		ShippingState:     req.ShippingDetails.State,
		ShippingZip:       req.ShippingDetails.Zip,
		Items:             items,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	return order, err
}

func adminOrderEmail(order models.Order) string {
	var itemLines strings.Builder
	for _, i := range order.Items {
		itemLines.WriteString(fmt.Sprintf("<li>%s (x%d)</li>", i.Name, i.Quantity))
	}
	return fmt.Sprintf(`
		<h2>New Order Received! 🎉</h2>
		<p><strong>Order ID:</strong> %s</p>
		<p><strong>Customer:</strong> %s %s</p>
		<p><strong>Total:</strong> ₹%d</p>
		<p><strong>Payment:</strong> %s</p>
		<hr/>
		<h3>Items:</h3>
		<ul>%s</ul>
		<p>Please check the Admin Dashboard to process this order.</p>`,
		order.ID, order.ShippingFirstName, order.ShippingLastName,
		order.TotalAmount, order.PaymentMethod, itemLines.String())
}

func statusUpdateEmail(orderID, name string, status models.OrderStatus) string {
	return fmt.Sprintf(`
		<h2>Order Status Update 🚚</h2>
		<p>Hello %s,</p>
		<p>Your order <strong>#%s</strong> status has been updated to: <span style="color:#065F46; font-weight:bold;">%s</span>.</p>
		<p>Thank you for shopping with NRK Aura.</p>`,
		name, orderID, status)
}

// -------- Handlers --------

// PlaceOrderHandler creates an order from a fully-formed cart snapshot.
// Reached after signature verification on the online path, directly for
// Cash on Delivery.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The client-computed total is not trusted; it must match the
		// line items plus the flat tax exactly.
		if expected := ComputeTotal(req.Items); req.Total != expected {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("total mismatch: submitted %d, expected %d", req.Total, expected),
			})
			return
		}

		log.Printf("📦 Placing Order: %s", req.ID)

		order, err := PlaceOrder(db, req)
		if err != nil {
			// Funds may already be captured upstream with no order
			// recorded. No compensating action exists; log enough to
			// reconcile by hand.
			log.Printf("❌ Place Order Error (order %s, gateway order %q, payment %q): %v",
				order.ID, req.GatewayOrderID, req.GatewayPaymentID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		go mailer.Send(mailer.AdminAddress(), fmt.Sprintf("New Order Alert #%s", order.ID), adminOrderEmail(order))
		go broadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GetAllOrdersHandler returns every order, newest first, with nested
// shipping details and line items.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("order_date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		resp := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			resp = append(resp, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// UpdateOrderStatusHandler overwrites the order status unconditionally —
// any status may be set from any status — and notifies the customer.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update Failed"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		var order models.Order
		if err := db.Select("shipping_email", "shipping_first_name", "shipping_last_name").
			First(&order, "id = ?", orderID).Error; err == nil && order.ShippingEmail != "" {
			name := strings.TrimSpace(order.ShippingFirstName + " " + order.ShippingLastName)
			go mailer.Send(order.ShippingEmail,
				fmt.Sprintf("Order Update: #%s is %s", orderID, newStatus),
				statusUpdateEmail(orderID, name, newStatus))
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DeleteOrderHandler removes an order and its line items, children first
// to satisfy the foreign-key relationship.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		log.Printf("🗑 Deleting Order: %s", orderID)

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", orderID).Delete(&models.Order{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrOrderNotFound
			}
			return nil
		})
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
