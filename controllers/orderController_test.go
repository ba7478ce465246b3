package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOrderTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Coupon{}))
	initializers.DB = db
}

// orderRouter wires GetOrderById behind claims for the given identity; an
// empty role means an anonymous request.
func orderRouter(userID uint, role string) *gin.Engine {
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		if role != "" {
			ctx.Set("user", jwt.MapClaims{"user_id": float64(userID), "role": role})
		}
		ctx.Next()
	})
	router.GET("/order/:orderId", GetOrderById)
	return router
}

func getOrder(t *testing.T, router *gin.Engine, orderID uint) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, fmt.Sprintf("/order/%d", orderID), nil)
	require.NoError(t, err)
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestGetOrderByIdOwner(t *testing.T) {
	setupOrderTestDB(t)
	owner := uint(7)
	order := models.Order{OrderNumber: "ORD-owner", CustomerID: &owner}
	require.NoError(t, initializers.DB.Create(&order).Error)

	recorder := getOrder(t, orderRouter(owner, "user"), order.ID)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetOrderByIdOtherUser(t *testing.T) {
	setupOrderTestDB(t)
	owner := uint(7)
	order := models.Order{OrderNumber: "ORD-other", CustomerID: &owner}
	require.NoError(t, initializers.DB.Create(&order).Error)

	recorder := getOrder(t, orderRouter(8, "user"), order.ID)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestGetOrderByIdAdmin(t *testing.T) {
	setupOrderTestDB(t)
	owner := uint(7)
	order := models.Order{OrderNumber: "ORD-admin", CustomerID: &owner}
	require.NoError(t, initializers.DB.Create(&order).Error)

	recorder := getOrder(t, orderRouter(99, "admin"), order.ID)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestGetOrderByIdGuestOrderNeedsAdmin(t *testing.T) {
	setupOrderTestDB(t)
	order := models.Order{OrderNumber: "ORD-guest"}
	require.NoError(t, initializers.DB.Create(&order).Error)

	recorder := getOrder(t, orderRouter(7, "user"), order.ID)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = getOrder(t, orderRouter(99, "admin"), order.ID)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
