package v1

import (
	"net/http"

	"github.com/cashplan/backend/internal/httputil"
	"github.com/cashplan/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterItemRoutes registers the routes for recurring items with
// the RouterGroup that is passed.
func RegisterItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsItems)
		r.GET("", GetItems)
		r.POST("", CreateItems)
	}

	// Item with ID
	{
		r.OPTIONS("/:id", OptionsItemDetail)
		r.GET("/:id", GetItem)
		r.PATCH("/:id", UpdateItem)
		r.DELETE("/:id", DeleteItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Router			/v1/items [options]
func OptionsItems(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/items/{id} [options]
func OptionsItemDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.RecurringItem{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create items
// @Description	Creates new recurring items
// @Tags			Items
// @Produce		json
// @Success		201	{object}	ItemCreateResponse
// @Failure		400	{object}	ItemCreateResponse
// @Failure		500	{object}	ItemCreateResponse
// @Param			items	body		[]ItemEditable	true	"Items"
// @Router			/v1/items [post]
func CreateItems(c *gin.Context) {
	var editables []ItemEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	httpStatus := http.StatusCreated

	r := ItemCreateResponse{}

	for _, editable := range editables {
		item := editable.model()

		err := models.DB.Create(&item).Error
		if err != nil {
			e := err.Error()
			s := status(err)
			r.Data = append(r.Data, ItemResponse{Error: &e})

			// The final status code is the highest HTTP status code number
			if s > httpStatus {
				httpStatus = s
			}

			continue
		}

		data := newItem(item)
		r.Data = append(r.Data, ItemResponse{Data: &data})
	}

	c.JSON(httpStatus, r)
}

// @Summary		Get items
// @Description	Returns a list of recurring items
// @Tags			Items
// @Produce		json
// @Success		200	{object}	ItemListResponse
// @Failure		400	{object}	ItemListResponse
// @Failure		500	{object}	ItemListResponse
// @Router			/v1/items [get]
// @Param			kind		query	string	false	"Filter by kind"
// @Param			interval	query	string	false	"Filter by interval"
// @Param			category	query	string	false	"Filter by category"
// @Param			name		query	string	false	"Filter by name, supports * globbing"
// @Param			archived	query	bool	false	"Is the item archived?"
func GetItems(c *gin.Context) {
	var filter ItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ItemListResponse{
			Error: &s,
		})
		return
	}

	var items []models.RecurringItem
	err := models.DB.Where(filter.model()).Order("name ASC").Find(&items).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemListResponse{
			Error: &e,
		})
		return
	}

	// The archived filter is a tristate, it cannot go through the model
	if filter.Archived != nil {
		items = slices.DeleteFunc(items, func(item models.RecurringItem) bool {
			return item.Archived != *filter.Archived
		})
	}

	// Name globbing is not expressible as a gorm query
	if filter.Name != "" {
		items = slices.DeleteFunc(items, func(item models.RecurringItem) bool {
			return !glob.Glob(filter.Name, item.Name)
		})
	}

	data := make([]Item, 0, len(items))
	for _, item := range items {
		data = append(data, newItem(item))
	}

	c.JSON(http.StatusOK, ItemListResponse{Data: data})
}

// @Summary		Get item
// @Description	Returns a specific recurring item
// @Tags			Items
// @Produce		json
// @Success		200	{object}	ItemResponse
// @Failure		400	{object}	ItemResponse
// @Failure		404	{object}	ItemResponse
// @Failure		500	{object}	ItemResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/items/{id} [get]
func GetItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	data := newItem(item)
	c.JSON(http.StatusOK, ItemResponse{Data: &data})
}

// @Summary		Update item
// @Description	Updates an existing recurring item. Only values to be updated need to be specified.
// @Tags			Items
// @Accept			json
// @Produce		json
// @Success		200		{object}	ItemResponse
// @Failure		400		{object}	ItemResponse
// @Failure		404		{object}	ItemResponse
// @Failure		500		{object}	ItemResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			item	body		ItemEditable	true	"Item"
// @Router			/v1/items/{id} [patch]
func UpdateItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ItemEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	var data ItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&item).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ItemResponse{
			Error: &e,
		})
		return
	}

	apiResource := newItem(item)
	c.JSON(http.StatusOK, ItemResponse{Data: &apiResource})
}

// @Summary		Delete item
// @Description	Deletes an item and all override records that belong to it
// @Tags			Items
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/items/{id} [delete]
func DeleteItem(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var item models.RecurringItem
	err = models.DB.First(&item, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Where(&models.OverrideRecord{ItemID: item.ID}).Delete(&models.OverrideRecord{}).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
