package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFoundRows(t *testing.T) {
	assert.Equal(t,
		"user:pw@tcp(db:3306)/shop?clientFoundRows=true",
		withFoundRows("user:pw@tcp(db:3306)/shop"))

	assert.Equal(t,
		"user:pw@tcp(db:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		withFoundRows("user:pw@tcp(db:3306)/shop?charset=utf8mb4&parseTime=True&loc=Local"))

	// Already present, left untouched.
	dsn := "user:pw@tcp(db:3306)/shop?clientFoundRows=true"
	assert.Equal(t, dsn, withFoundRows(dsn))
}
