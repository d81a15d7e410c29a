package api

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errNotFinite = errors.New("not a finite number")

func paramFloat(c *gin.Context, name string) (float64, error) {
	v, err := strconv.ParseFloat(c.Param(name), 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = errNotFinite
	}
	if err != nil {
		return 0, &ParseError{Param: name, Expected: "double", Err: err}
	}
	return v, nil
}

func paramInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, &ParseError{Param: name, Expected: "int", Err: err}
	}
	return int(v), nil
}

func paramInt64(c *gin.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, &ParseError{Param: name, Expected: "long", Err: err}
	}
	return v, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Param: name, Expected: "int", Err: err}
	}
	return v, nil
}
