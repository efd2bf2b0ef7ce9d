package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"promotions-backend/models"
	"promotions-backend/repository"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	Repo repository.PromotionRepository
}

// parseBoolStrict parses a query-string boolean. Accepted, case-insensitive
// and trimmed: true/1/yes and false/0/no. Anything else is a client error.
func parseBoolStrict(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

// ListPromotions godoc
// @Summary      List promotions
// @Description  Returns promotions filtered by at most one query parameter. Filters are checked in the order id, active, name, product_id, promotion_type; only the first one present is applied and the rest are ignored. Without filters the full collection is returned.
// @Tags         promotions
// @Produce      json
// @Param        id              query  int     false  "Exact promotion id; yields a list of length 0 or 1"
// @Param        active          query  string  false  "true/1/yes or false/0/no (case-insensitive)"
// @Param        name            query  string  false  "Exact name match"
// @Param        product_id      query  int     false  "Exact product id match"
// @Param        promotion_type  query  string  false  "Exact type match (PERCENT, DISCOUNT, BOGO)"
// @Success      200  {array}   models.Promotion
// @Failure      400  {object}  map[string]interface{}
// @Router       /promotions [get]
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	log.Printf("Request to list promotions: %s", c.Request.URL.RawQuery)
	query := c.Request.URL.Query()

	var (
		promotions []models.Promotion
		err        error
	)

	// Fixed precedence, first present filter wins. This is deliberately not
	// an AND of all supplied filters.
	switch {
	case query.Has("id"):
		// An unparsable id behaves like a miss, not a client error.
		if id, convErr := strconv.Atoi(strings.TrimSpace(query.Get("id"))); convErr == nil && id > 0 {
			var found *models.Promotion
			found, err = h.Repo.Find(uint(id))
			if found != nil {
				promotions = []models.Promotion{*found}
			}
		}
	case query.Has("active"):
		active, ok := parseBoolStrict(query.Get("active"))
		if !ok {
			errorJSON(c, http.StatusBadRequest, fmt.Sprintf(
				"Invalid value for query parameter 'active': %q. Accepted: true, false, 1, 0, yes, no (case-insensitive)",
				query.Get("active")))
			return
		}
		if active {
			promotions, err = h.Repo.FindActive(models.Today())
		} else {
			promotions, err = h.Repo.FindInactive(models.Today())
		}
	case query.Has("name"):
		promotions, err = h.Repo.FindByName(strings.TrimSpace(query.Get("name")))
	case query.Has("product_id"):
		pid, convErr := strconv.Atoi(strings.TrimSpace(query.Get("product_id")))
		if convErr != nil {
			errorJSON(c, http.StatusBadRequest, fmt.Sprintf(
				"Invalid value for query parameter 'product_id': %q", query.Get("product_id")))
			return
		}
		promotions, err = h.Repo.FindByProductID(pid)
	case query.Has("promotion_type"):
		// A blank type matches nothing rather than everything.
		promotions, err = h.Repo.FindByType(strings.TrimSpace(query.Get("promotion_type")))
	default:
		promotions, err = h.Repo.All()
	}

	if err != nil {
		databaseError(c, err)
		return
	}
	if promotions == nil {
		promotions = []models.Promotion{}
	}
	c.JSON(http.StatusOK, promotions)
}

// CreatePromotion godoc
// @Summary      Create a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        promotion  body      models.Promotion  true  "Promotion to create (id is server-assigned)"
// @Success      201        {object}  models.Promotion
// @Header       201        {string}  Location  "URL of the created promotion"
// @Failure      400        {object}  map[string]interface{}
// @Failure      415        {object}  map[string]interface{}
// @Router       /promotions [post]
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	log.Printf("Request to create a promotion")
	if !requireJSON(c) {
		return
	}
	data, ok := bindJSONObject(c)
	if !ok {
		return
	}

	var promotion models.Promotion
	if verr := promotion.Deserialize(data); verr != nil {
		errorJSON(c, http.StatusBadRequest, verr.Error())
		return
	}

	if err := h.Repo.Create(&promotion); err != nil {
		databaseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/promotions/%d", promotion.ID))
	c.JSON(http.StatusCreated, promotion)
}

// GetPromotion godoc
// @Summary      Get a promotion
// @Tags         promotions
// @Produce      json
// @Param        id   path      int  true  "Promotion id"
// @Success      200  {object}  models.Promotion
// @Failure      404  {object}  map[string]interface{}
// @Router       /promotions/{id} [get]
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Printf("Request to get promotion [%d]", id)

	promotion, err := h.Repo.Find(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if promotion == nil {
		errorJSON(c, http.StatusNotFound, fmt.Sprintf("Promotion with id '%d' was not found.", id))
		return
	}
	c.JSON(http.StatusOK, promotion)
}

// UpdatePromotion godoc
// @Summary      Update a promotion
// @Description  Full-replace update. If the body carries an id that differs from the path id the request is rejected before anything is written.
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Promotion id"
// @Param        promotion  body      models.Promotion  true  "Replacement field values"
// @Success      200        {object}  models.Promotion
// @Failure      400        {object}  map[string]interface{}
// @Failure      404        {object}  map[string]interface{}
// @Failure      415        {object}  map[string]interface{}
// @Router       /promotions/{id} [put]
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Printf("Request to update promotion [%d]", id)
	if !requireJSON(c) {
		return
	}

	promotion, err := h.Repo.Find(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if promotion == nil {
		errorJSON(c, http.StatusNotFound, fmt.Sprintf("Promotion with id '%d' was not found.", id))
		return
	}

	data, ok := bindJSONObject(c)
	if !ok {
		return
	}

	// The path id is authoritative. A disagreeing body id fails before any
	// mutation happens.
	if bodyID, present := data["id"]; present && !matchesID(bodyID, id) {
		errorJSON(c, http.StatusBadRequest, "ID in body must match resource path")
		return
	}

	if verr := promotion.Deserialize(data); verr != nil {
		errorJSON(c, http.StatusBadRequest, verr.Error())
		return
	}
	promotion.ID = id

	if err := h.Repo.Update(promotion); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, promotion)
}

// DeletePromotion godoc
// @Summary      Delete a promotion
// @Description  Hard delete. Repeating the call returns 404.
// @Tags         promotions
// @Param        id  path  int  true  "Promotion id"
// @Success      204
// @Failure      404  {object}  map[string]interface{}
// @Router       /promotions/{id} [delete]
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Printf("Request to delete promotion [%d]", id)

	deleted, err := h.Repo.Delete(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if !deleted {
		errorJSON(c, http.StatusNotFound, fmt.Sprintf("Promotion with id '%d' was not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// DeactivatePromotion godoc
// @Summary      Deactivate a promotion
// @Description  Clamps end_date to yesterday. Never extends a promotion that already ended; calling it twice yields the same result.
// @Tags         promotions
// @Produce      json
// @Param        id   path      int  true  "Promotion id"
// @Success      200  {object}  models.Promotion
// @Failure      404  {object}  map[string]interface{}
// @Router       /promotions/{id}/deactivate [put]
func (h *PromotionHandler) DeactivatePromotion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	log.Printf("Request to deactivate promotion [%d]", id)

	promotion, err := h.Repo.Find(id)
	if err != nil {
		databaseError(c, err)
		return
	}
	if promotion == nil {
		errorJSON(c, http.StatusNotFound, fmt.Sprintf("Promotion with id '%d' was not found.", id))
		return
	}

	// end_date = min(end_date, yesterday)
	yesterday := models.Yesterday()
	if promotion.EndDate.After(yesterday) {
		promotion.EndDate = yesterday
	}

	if err := h.Repo.Update(promotion); err != nil {
		databaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, promotion)
}

// pathID parses the :id path segment. Non-numeric ids read as an unmapped
// resource, so the caller sees 404 rather than 400.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		errorJSON(c, http.StatusNotFound, fmt.Sprintf("Promotion with id '%s' was not found.", raw))
		return 0, false
	}
	return uint(id), true
}

// matchesID compares a JSON body id against the path id. Only integral
// numeric values can match.
func matchesID(raw interface{}, id uint) bool {
	switch v := raw.(type) {
	case float64:
		return v == math.Trunc(v) && v == float64(id)
	case int:
		return v >= 0 && uint(v) == id
	case int64:
		return v >= 0 && uint(v) == id
	default:
		return false
	}
}
