// Package testutil holds fixtures and request helpers shared by handler and
// routing tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"libraryapp/internal/book"
	"libraryapp/internal/platform/crypto"
	"libraryapp/internal/user"
)

// TestPassword is the plain password behind TestUser's hash.
const TestPassword = "rahasia123"

// TestUser returns a registry entry whose password is TestPassword.
func TestUser() user.User {
	hash, err := crypto.HashPassword(TestPassword)
	if err != nil {
		panic(err)
	}
	return user.User{
		Fullname:     "Test Reader",
		Username:     "testreader",
		Email:        "reader@mail.com",
		PasswordHash: hash,
	}
}

// TestBook is a valid book without an id.
var TestBook = book.Book{
	Title:         "Bumi",
	Author:        "Tere Liye",
	Description:   "Namaku Raib, usiaku lima belas tahun.",
	ImageURL:      "https://cdn.gramedia.com/uploads/items/bumi.jpg",
	CategoryIDs:   []int{10},
	PublishedDate: book.NewPublishedDate(book.PrecisionYear, time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC)),
}

// BookRequest is the JSON body the book handlers accept for TestBook.
func BookRequest() map[string]any {
	return map[string]any{
		"title":        TestBook.Title,
		"author":       TestBook.Author,
		"description":  TestBook.Description,
		"image_url":    TestBook.ImageURL,
		"category_ids": TestBook.CategoryIDs,
		"precision":    string(TestBook.PublishedDate.Precision),
		"date":         TestBook.PublishedDate.Date.Format("2006-01-02"),
	}
}

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, username string) string {
	token, _, _ := crypto.GenerateToken(secret, username, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing
func GenerateExpiredToken(secret, username string) string {
	c := crypto.Claims{
		Sub: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// Data returns the envelope's data member as a map, or nil.
func (r RecordResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// Meta returns the envelope's meta member as a map, or nil.
func (r RecordResponse) Meta() map[string]interface{} {
	meta, _ := r.Body["meta"].(map[string]interface{})
	return meta
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
