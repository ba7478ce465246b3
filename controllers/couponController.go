package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/ardena/ardena-api/initializers"
	"github.com/ardena/ardena-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateCoupon(ctx *gin.Context) {
	var coupon models.Coupon
	if err := ctx.ShouldBindJSON(&coupon); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := initializers.DB.Create(&coupon).Error; err != nil {
		log.Println("Coupon creation error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to create coupon")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"coupon": coupon})
}

func GetCoupons(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	var coupons []models.Coupon
	result := initializers.DB.Order("id desc").Limit(limit).Offset(offset).Find(&coupons)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch coupons")
		return
	}

	var count int64
	initializers.DB.Model(&models.Coupon{}).Count(&count)
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"coupons": coupons,
		"metadata": gin.H{
			"total":       count,
			"currentPage": page,
			"limit":       limit,
			"hasNextPage": int(totalPages) > page,
		},
	})
}

func GetCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("couponId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var coupon models.Coupon
	if err := initializers.DB.First(&coupon, couponId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		} else {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch coupon")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"coupon": coupon})
}

func UpdateCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("couponId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var body struct {
		Discount *int    `json:"discount"`
		Active   *bool   `json:"active"`
		ValidTo  *string `json:"validTo"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updates := map[string]any{}
	if body.Discount != nil {
		if *body.Discount < 1 || *body.Discount > 100 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Discount must be between 1 and 100")
			return
		}
		updates["discount"] = *body.Discount
	}
	if body.Active != nil {
		updates["active"] = *body.Active
	}
	if body.ValidTo != nil {
		updates["valid_to"] = *body.ValidTo
	}

	result := initializers.DB.Model(&models.Coupon{}).Where("id = ?", couponId).Updates(updates)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to update coupon")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Coupon not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon updated successfully."})
}

func DeleteCoupon(ctx *gin.Context) {
	couponId, err := strconv.Atoi(ctx.Param("couponId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	if result := initializers.DB.Delete(&models.Coupon{}, couponId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to delete coupon")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon deleted successfully."})
}
