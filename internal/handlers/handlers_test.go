package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/jkcars/booking-hub/internal/catalog"
	"bitbucket.org/jkcars/booking-hub/internal/handlers"
	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/tools/redisfactory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testRouter(t *testing.T, storeURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	t.Setenv("SESSIONS_REDIS_URI", "redis://127.0.0.1:1/0")
	t.Setenv("RESPONSES_CACHE_REDIS_URI", "redis://127.0.0.1:1/1")

	catalogStore, err := catalog.Load("../../data")
	assert.Nil(t, err)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", &log)
	})

	handlers.RegisterRoutes(router, handlers.Dependencies{
		Catalog:      catalogStore,
		Store:        store.NewClient(&log, store.WithBaseURL(storeURL)),
		RedisFactory: redisfactory.New(),
	})

	return router
}

func performJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		encoded, _ := json.Marshal(payload)
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestCatalogRoutes(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1")

	t.Run("should list the fleet", func(t *testing.T) {
		response := performJSON(router, http.MethodGet, "/fleet", nil)

		assert.Equal(t, http.StatusOK, response.Code)

		var vehicles []map[string]any
		assert.Nil(t, json.Unmarshal(response.Body.Bytes(), &vehicles))
		assert.Len(t, vehicles, 8)
	})

	t.Run("should fetch one vehicle", func(t *testing.T) {
		response := performJSON(router, http.MethodGet, "/fleet/clio-5", nil)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `"id":"clio-5"`)
	})

	t.Run("should 404 an unknown vehicle", func(t *testing.T) {
		response := performJSON(router, http.MethodGet, "/fleet/batmobile", nil)

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Contains(t, response.Body.String(), "Failed to find vehicle")
	})

	t.Run("should fetch one excursion", func(t *testing.T) {
		response := performJSON(router, http.MethodGet, "/excursions/sidi-bou-said", nil)

		assert.Equal(t, http.StatusOK, response.Code)
	})
}

func TestQuoteRoutes(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1")

	t.Run("should price a car rental", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/quotes/car", map[string]any{
			"carId":      "clio-5",
			"pickupDate": "2026-05-01",
			"returnDate": "2026-05-03",
			"addOns":     []string{"gps"},
		})

		assert.Equal(t, http.StatusOK, response.Code)

		var quote map[string]any
		assert.Nil(t, json.Unmarshal(response.Body.Bytes(), &quote))

		// 3 days at 90 plus gps at 5 per day
		assert.Equal(t, float64(285), quote["total"])
	})

	t.Run("should reject a quote without a vehicle", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/quotes/car", map[string]any{
			"pickupDate": "2026-05-01",
		})

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("should price an excursion with the group tier", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/quotes/excursion", map[string]any{
			"excursionId": "sidi-bou-said",
			"persons":     4,
			"carType":     "suv",
			"addOns":      []string{"lunch"},
		})

		assert.Equal(t, http.StatusOK, response.Code)

		var quote map[string]any
		assert.Nil(t, json.Unmarshal(response.Body.Bytes(), &quote))
		assert.Equal(t, float64(110), quote["total"])
	})

	t.Run("should price an airport transfer", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/quotes/airport-transfer", map[string]any{
			"airport":       "enfidha",
			"carPreference": "minivan",
		})

		assert.Equal(t, http.StatusOK, response.Code)

		var quote map[string]any
		assert.Nil(t, json.Unmarshal(response.Body.Bytes(), &quote))
		assert.Equal(t, float64(65), quote["total"])
	})

	t.Run("should reject an unknown airport", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/quotes/airport-transfer", map[string]any{
			"airport":       "orly",
			"carPreference": "sedan",
		})

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestAvailabilityRoutes(t *testing.T) {
	t.Run("should search free vehicles across the range", func(t *testing.T) {
		reservationStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer reservationStore.Close()

		router := testRouter(t, reservationStore.URL)

		response := performJSON(router, http.MethodPost, "/availability/search", map[string]any{
			"from": "2026-05-05",
			"to":   "2026-05-07",
		})

		assert.Equal(t, http.StatusOK, response.Code)

		var result struct {
			Vehicles []map[string]any `json:"vehicles"`
		}
		assert.Nil(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.Len(t, result.Vehicles, 8)
	})

	t.Run("should reject an inverted range", func(t *testing.T) {
		router := testRouter(t, "http://127.0.0.1:1")

		response := performJSON(router, http.MethodPost, "/availability/search", map[string]any{
			"from": "2026-05-07",
			"to":   "2026-05-05",
		})

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("should reject a bad horizon", func(t *testing.T) {
		router := testRouter(t, "http://127.0.0.1:1")

		response := performJSON(router, http.MethodGet, "/availability/vehicles/clio-5/dates?horizon=zero", nil)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func TestBookingRoutes(t *testing.T) {
	router := testRouter(t, "http://127.0.0.1:1")

	t.Run("should reject a start with missing fields", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/bookings", map[string]any{
			"type":  "car",
			"carId": "clio-5",
		})

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "pickupDate")
	})

	t.Run("should reject an unknown service type", func(t *testing.T) {
		response := performJSON(router, http.MethodPost, "/bookings", map[string]any{
			"type": "submarine",
		})

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})
}

func staffToken(t *testing.T, secret string) string {
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "staff@jkcars.tn",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.Nil(t, err)

	return token
}

// adminStoreStub answers the auth and reservation endpoints the back
// office touches, issuing the given access token at sign-in.
func adminStoreStub(accessToken string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/auth/token" {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": accessToken})
			return
		}

		_, _ = w.Write([]byte(`[]`))
	}))
}

func adminGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestAdminRoutes(t *testing.T) {
	issued := staffToken(t, "store-secret")
	storeServer := adminStoreStub(issued)
	defer storeServer.Close()

	router := testRouter(t, storeServer.URL)

	t.Run("should gate the back office on a session", func(t *testing.T) {
		response := performJSON(router, http.MethodGet, "/admin/reservations", nil)

		assert.Equal(t, http.StatusUnauthorized, response.Code)
		assert.Contains(t, response.Body.String(), "Admin session required")
	})

	t.Run("should refuse a malformed bearer token", func(t *testing.T) {
		response := adminGet(router, "/admin/reservations", "garbage")

		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("should refuse a well-formed token nobody signed in with", func(t *testing.T) {
		forged := staffToken(t, "attacker-secret")

		response := adminGet(router, "/admin/reservations", forged)

		assert.Equal(t, http.StatusUnauthorized, response.Code)
		assert.Contains(t, response.Body.String(), "Admin session invalid or expired")
	})

	t.Run("should accept the token issued at sign-in", func(t *testing.T) {
		signIn := performJSON(router, http.MethodPost, "/admin/sign-in", map[string]any{
			"email":    "staff@jkcars.tn",
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusOK, signIn.Code)

		var session struct {
			AccessToken string `json:"accessToken"`
		}
		assert.Nil(t, json.Unmarshal(signIn.Body.Bytes(), &session))
		assert.Equal(t, issued, session.AccessToken)

		response := adminGet(router, "/admin/reservations", session.AccessToken)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), `"stats"`)
	})

	t.Run("should still refuse a forged token while a session is live", func(t *testing.T) {
		forged := staffToken(t, "attacker-secret")

		response := adminGet(router, "/admin/reservations", forged)

		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})
}
