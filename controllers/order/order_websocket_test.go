package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFeedBroadcastsPlacedOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/ws/feed", OrderWebSocketHandler)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/orders/ws/feed"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The handler registers the connection after the upgrade completes.
	require.Eventually(t, func() bool {
		wsMu.Lock()
		defer wsMu.Unlock()
		return len(wsClients) > 0
	}, time.Second, 10*time.Millisecond)

	broadcastNewOrder(models.Order{
		ID:                "ORD-600001",
		UserID:            "guest",
		OrderDate:         time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Status:            models.OrderStatusPending,
		TotalAmount:       10300,
		PaymentMethod:     "Cash on Delivery",
		ShippingFirstName: "Asha",
		ShippingLastName:  "Nair",
		Items: []models.OrderItem{
			{ProductID: "prod-1", Name: "Aurelia Bangle", Quantity: 2, Price: 3000},
		},
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &payload))
	assert.Equal(t, "ORD-600001", payload["id"])
	assert.Equal(t, "2026-08-30", payload["date"])
	assert.Equal(t, string(models.OrderStatusPending), payload["status"])

	shipping, ok := payload["shippingDetails"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Asha", shipping["firstName"])

	items, ok := payload["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
}
