// Package handlers is made to handle requests
package handlers

import (
	"classical-cipher-backend/crypto"
	"classical-cipher-backend/metrics"
	"classical-cipher-backend/models"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	directionEncrypt = "encrypt"
	directionDecrypt = "decrypt"
)

func init() {
	// Report validation failures with the json field names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

type CipherHandler struct {
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func NewCipherHandler(baseLogger *zerolog.Logger, m *metrics.Metrics) *CipherHandler {
	return &CipherHandler{
		log:     baseLogger.With().Str("component", "cipher_handler").Logger(),
		metrics: m,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Classical cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) ListCiphers(c *gin.Context) {
	resp := models.CipherListResponse{}
	for _, ci := range crypto.All() {
		resp.Ciphers = append(resp.Ciphers, models.CipherInfo{
			Name:    ci.Name(),
			KeyType: ci.KeyKind().String(),
			Endpoints: []string{
				"/api/" + ci.Name() + "/" + directionEncrypt,
				"/api/" + ci.Name() + "/" + directionDecrypt,
			},
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Encrypt returns the POST /api/<cipher>/encrypt handler.
func (h *CipherHandler) Encrypt(ci crypto.Cipher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EncryptRequest
		if !h.bind(c, &req) {
			return
		}
		h.run(c, ci, directionEncrypt, *req.PlainText, req.Key)
	}
}

// Decrypt returns the POST /api/<cipher>/decrypt handler.
func (h *CipherHandler) Decrypt(ci crypto.Cipher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DecryptRequest
		if !h.bind(c, &req) {
			return
		}
		h.run(c, ci, directionDecrypt, *req.CipherText, req.Key)
	}
}

func (h *CipherHandler) bind(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, io.EOF):
		abortWithError(c, http.StatusBadRequest, "Request body is empty")
	case errors.As(err, &verrs):
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		abortWithError(c, http.StatusBadRequest, "Missing fields: "+strings.Join(missing, ", "))
	default:
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid JSON body: %v", err))
	}
	return false
}

func (h *CipherHandler) run(c *gin.Context, ci crypto.Cipher, direction, text string, rawKey []byte) {
	key, err := models.DecodeKey(ci.KeyKind(), rawKey)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid key: "+detail(err, models.ErrKeyType))
		return
	}

	op := ci.Encrypt
	if direction == directionDecrypt {
		op = ci.Decrypt
	}

	start := time.Now()
	result, err := op(text, key)
	h.metrics.RecordOperation(ci.Name(), direction, time.Since(start), err)

	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrInvalidKey):
			abortWithError(c, http.StatusBadRequest, "Invalid key: "+detail(err, crypto.ErrInvalidKey))
		case errors.Is(err, crypto.ErrMalformedInput):
			abortWithError(c, http.StatusBadRequest, "Malformed input: "+detail(err, crypto.ErrMalformedInput))
		default:
			h.log.Error().Err(err).Str("cipher", ci.Name()).Str("direction", direction).Msg("Cipher operation failed")
			abortWithError(c, http.StatusInternalServerError, "Cipher operation failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{resultField(ci.Name(), direction): result})
}

// resultField keeps the response keys existing clients already parse:
// caesar answers with *_message, every other cipher with *_text.
func resultField(cipher, direction string) string {
	suffix := "_text"
	if cipher == "caesar" {
		suffix = "_message"
	}
	return direction + "ed" + suffix
}

// detail drops the sentinel's own text from a wrapped error message.
func detail(err, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}
