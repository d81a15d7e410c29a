package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"utility-calculator/internal/models"
	"utility-calculator/internal/store"
)

func bindRecord(c *gin.Context) (models.Record, error) {
	var rec models.Record
	if err := c.ShouldBindJSON(&rec); err != nil || rec == nil {
		return nil, errMalformedBody
	}
	return rec, nil
}

func (h *Handler) CreateUser(c *gin.Context) {
	rec, err := bindRecord(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	count, err := h.users.Create(rec)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User added successfully! Total users: %d", count)})
}

func (h *Handler) ListUsers(c *gin.Context) {
	recs, err := h.users.List()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *Handler) GetUser(c *gin.Context) {
	index, err := paramInt(c, "index")
	if err != nil {
		h.writeError(c, err)
		return
	}
	rec, err := h.users.Get(index)
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, fmt.Sprintf("User not found with ID: %d", index))
	case err != nil:
		h.writeError(c, err)
	default:
		c.JSON(http.StatusOK, rec)
	}
}

func (h *Handler) UpdateUser(c *gin.Context) {
	index, err := paramInt(c, "index")
	if err != nil {
		h.writeError(c, err)
		return
	}
	rec, err := bindRecord(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	err = h.users.Update(index, rec)
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, fmt.Sprintf("User not found at index %d", index))
	case err != nil:
		h.writeError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User at index %d updated successfully.", index)})
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	index, err := paramInt(c, "index")
	if err != nil {
		h.writeError(c, err)
		return
	}
	err = h.users.Delete(index)
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, fmt.Sprintf("User not found at index %d", index))
	case err != nil:
		h.writeError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User at index %d deleted successfully.", index)})
	}
}
