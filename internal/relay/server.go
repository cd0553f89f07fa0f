// Package relay is the HTTP service that accepts contact submissions from
// folio, records them once per idempotency key and forwards them by mail.
package relay

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/contact"
	"folio/internal/mail"
)

// sendTimeout bounds one mail delivery; it must stay below the store lease
const sendTimeout = 30 * time.Second

// Server wires the HTTP routes to the store and the mailer
type Server struct {
	store      *Store
	mailer     mail.Mailer
	adminToken string
	salt       string
}

// NewServer creates a relay server. An empty admin token disables the
// stats endpoint.
func NewServer(store *Store, mailer mail.Mailer, adminToken, salt string) *Server {
	return &Server{store: store, mailer: mailer, adminToken: adminToken, salt: salt}
}

// Handler builds the gin engine
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/contact", s.handleContact)

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())
	admin.GET("/api/stats", s.handleStats)
	return r
}

func (s *Server) handleContact(c *gin.Context) {
	id := c.GetHeader("Idempotency-Key")
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid", "error": "Idempotency-Key must be a UUID"})
		return
	}

	var fields contact.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid", "error": "malformed submission"})
		return
	}
	if errs := contact.Validate(fields); !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "invalid", "error": "validation failed", "errors": errs})
		return
	}

	// a client that gives up must not leave the record pending
	ctx := context.WithoutCancel(c.Request.Context())
	rec, claimed, err := s.store.Claim(ctx, Record{
		ID:       id,
		Name:     strings.TrimSpace(fields.Name),
		Email:    fields.Email,
		Subject:  strings.TrimSpace(fields.Subject),
		Message:  strings.TrimSpace(fields.Message),
		HashedIP: s.hashIP(c.ClientIP()),
	})
	if err != nil {
		log.Printf("relay: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "storage unavailable"})
		return
	}
	if !claimed {
		if rec.State == StateDelivered {
			c.JSON(http.StatusOK, gin.H{"status": string(rec.State), "id": id, "duplicate": true})
			return
		}
		// an earlier request is still delivering it
		c.Header("Retry-After", "5")
		c.JSON(http.StatusConflict, gin.H{"status": string(rec.State), "id": id, "duplicate": true, "error": "delivery in progress"})
		return
	}

	msg := mail.ContactMessage(mail.Contact{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		Subject: rec.Subject,
		Body:    rec.Message,
	})
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	err = s.mailer.Send(sendCtx, msg)
	cancel()
	if err != nil {
		log.Printf("relay: delivery of %s failed: %v", id, err)
		if merr := s.store.MarkFailed(ctx, id, err); merr != nil {
			log.Printf("relay: %v", merr)
		}
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "error": "delivery failed"})
		return
	}
	if err := s.store.MarkDelivered(ctx, id); err != nil {
		log.Printf("relay: %v", err)
	}
	log.Printf("relay: delivered %s", id)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "id": id})
}

func (s *Server) handleStats(c *gin.Context) {
	st, err := s.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if s.adminToken == "" || !ok ||
			subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// hashIP keeps a stable per-client key without storing the address
func (s *Server) hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}
