package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/services"
)

type MenuController struct {
	menu MenuManager
}

func NewMenuController(menu MenuManager) *MenuController {
	return &MenuController{menu: menu}
}

func (mc *MenuController) ListMenuItems(c *gin.Context) {
	items, err := mc.menu.ListMenuItems(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	item, err := mc.menu.GetMenuItem(c.Request.Context(), c.Param("user_id"), c.Param("item_id"))
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := mc.menu.CreateMenuItem(c.Request.Context(), c.Param("user_id"), &req)
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	item, err := mc.menu.UpdateMenuItem(c.Request.Context(), c.Param("user_id"), c.Param("item_id"), &req)
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	deleted, err := mc.menu.DeleteMenuItem(c.Request.Context(), c.Param("user_id"), c.Param("item_id"))
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("Menu item"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MenuController) UpdateMenuItemImage(c *gin.Context) {
	file, err := requireImageUpload(c)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	item, err := mc.menu.UpdateMenuItemImage(c.Request.Context(), c.Param("user_id"), c.Param("item_id"), file)
	if err != nil {
		respondServiceError(c, err, "Menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}
