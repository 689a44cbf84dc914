package api

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

// CasbinEnforcer wraps a casbin enforcer with thread-safe access
type CasbinEnforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewCasbinEnforcer loads the model and policy from files
func NewCasbinEnforcer(modelPath, policyPath string) (*CasbinEnforcer, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policy: %w", err)
	}

	log.Info().
		Str("model", modelPath).
		Str("policy", policyPath).
		Msg("casbin enforcer initialized")

	return &CasbinEnforcer{enforcer: enforcer}, nil
}

// NewCasbinEnforcerFromString builds an enforcer from inline model and
// policy text, used by tests
func NewCasbinEnforcerFromString(modelText, policyText string) (*CasbinEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	for _, line := range strings.Split(policyText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		args := make([]interface{}, len(parts)-1)
		for i, v := range parts[1:] {
			args[i] = v
		}

		switch parts[0] {
		case "p":
			if _, err := enforcer.AddPolicy(args...); err != nil {
				log.Warn().Err(err).Str("policy", line).Msg("failed to add policy")
			}
		case "g":
			if _, err := enforcer.AddGroupingPolicy(args...); err != nil {
				log.Warn().Err(err).Str("grouping", line).Msg("failed to add grouping policy")
			}
		}
	}

	return &CasbinEnforcer{enforcer: enforcer}, nil
}

// Enforce checks whether sub may perform act on obj
func (ce *CasbinEnforcer) Enforce(sub, obj, act string) (bool, error) {
	ce.mu.RLock()
	defer ce.mu.RUnlock()
	return ce.enforcer.Enforce(sub, obj, act)
}

// ReloadPolicy reloads the policy from its source
func (ce *CasbinEnforcer) ReloadPolicy() error {
	ce.mu.Lock()
	defer ce.mu.Unlock()
	return ce.enforcer.LoadPolicy()
}

var globalCasbinEnforcer *CasbinEnforcer

// InitCasbin initializes the global enforcer from the casbin directory,
// called once at server startup
func InitCasbin(casbinDir string) error {
	modelPath := filepath.Join(casbinDir, "model.conf")
	policyPath := filepath.Join(casbinDir, "policy.csv")

	enforcer, err := NewCasbinEnforcer(modelPath, policyPath)
	if err != nil {
		return err
	}

	globalCasbinEnforcer = enforcer
	return nil
}

// SetGlobalCasbinEnforcer replaces the global enforcer, used by tests
func SetGlobalCasbinEnforcer(enforcer *CasbinEnforcer) {
	globalCasbinEnforcer = enforcer
}

// GetGlobalCasbinEnforcer returns the global enforcer
func GetGlobalCasbinEnforcer() *CasbinEnforcer {
	return globalCasbinEnforcer
}

// CasbinMiddleware checks the token's role against the policy for the
// request path and method. Must run after authMiddleware.
func (server *Server) CasbinMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if globalCasbinEnforcer == nil {
			log.Warn().Msg("casbin enforcer not initialized, skipping permission check")
			ctx.Next()
			return
		}

		authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

		// Match against the route template so /orders/17 checks as /orders/:id.
		obj := ctx.FullPath()
		if obj == "" {
			obj = ctx.Request.URL.Path
		}
		obj = strings.TrimPrefix(obj, "/v1")
		act := ctx.Request.Method

		allowed, err := globalCasbinEnforcer.Enforce(authPayload.Role, obj, act)
		if err != nil {
			log.Error().Err(err).
				Str("path", obj).
				Str("method", act).
				Str("role", authPayload.Role).
				Msg("casbin enforcement error")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}

		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusForbidden, errorResponse(
				errors.New("you don't have permission to access this resource"),
			))
			return
		}

		ctx.Next()
	}
}
