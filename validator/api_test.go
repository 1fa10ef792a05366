package validator_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ristiisa/credit-card-validator/validator"
	"github.com/ristiisa/credit-card-validator/validator/models"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := validator.NewAPI(validator.NewService(validator.DefaultConfig()))
	api.AppendRoutes(router)
	return router
}

func TestAPI(t *testing.T) {
	router := newTestRouter()

	t.Run("validate a future date", func(t *testing.T) {
		future := time.Now().AddDate(1, 0, 0)
		create := models.ValidateRequest{
			ExpirationDate: fmt.Sprintf("%02d/%d", int(future.Month()), future.Year()),
		}

		jsonReq, _ := json.Marshal(create)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/validations", bytes.NewBuffer(jsonReq))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		v := models.Validation{}
		err := json.Unmarshal(w.Body.Bytes(), &v)
		require.NoError(t, err)

		require.True(t, v.Valid)
		require.True(t, v.PotentiallyValid)
		require.Empty(t, v.Message)
		require.NotNil(t, v.ExpiresAt)
		require.Contains(t, v.CardFace, "/")
	})

	t.Run("reject an impossible month", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"expiration_date":"13/30"}`)
		req, _ := http.NewRequest(http.MethodPost, "/validations", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		v := models.Validation{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		require.False(t, v.Valid)
		require.False(t, v.PotentiallyValid)
		require.Nil(t, v.ExpiresAt)
	})

	t.Run("past date reports expired", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"expiration_date":"01/2020"}`)
		req, _ := http.NewRequest(http.MethodPost, "/validations", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		v := models.Validation{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		require.False(t, v.Valid)
		require.True(t, v.Expired)
	})

	t.Run("empty date carries a message", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"expiration_date":""}`)
		req, _ := http.NewRequest(http.MethodPost, "/validations", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		v := models.Validation{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
		require.False(t, v.Valid)
		require.False(t, v.PotentiallyValid)
		require.Equal(t, "No date given", v.Message)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := bytes.NewBufferString(`{"expiration_date":`)
		req, _ := http.NewRequest(http.MethodPost, "/validations", body)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAPI_ValidateQuery(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/validate?date=06%2F204", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	v := models.Validation{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	require.False(t, v.Valid)
	require.True(t, v.PotentiallyValid)
}
