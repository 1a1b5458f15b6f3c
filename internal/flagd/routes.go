package flagd

import (
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tanklash/flagwire/internal/flags"
	"github.com/tanklash/flagwire/internal/observability"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"uptime":    time.Since(s.started).String(),
			"component": "flagd",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/flags", func(c *gin.Context) {
		s.mu.RLock()
		good := typeListJSON(s.registry.GoodFlags())
		bad := typeListJSON(s.registry.BadFlags())
		custom := typeListJSON(s.registry.CustomFlags())
		s.mu.RUnlock()
		c.JSON(http.StatusOK, gin.H{
			"good":   good,
			"bad":    bad,
			"custom": custom,
		})
	})

	s.router.GET("/flags/:abbrev", func(c *gin.Context) {
		abbrev := c.Param("abbrev")
		s.mu.RLock()
		ft, ok := s.registry.Lookup(abbrev)
		s.mu.RUnlock()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown abbreviation", "abbrev": abbrev})
			return
		}
		c.JSON(http.StatusOK, typeJSON(ft))
	})

	// Decodes a hex-encoded instance record, the same bytes a client
	// would receive in a flag update.
	s.router.POST("/decode", func(c *gin.Context) {
		var req struct {
			Record string `json:"record"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		raw, err := hex.DecodeString(req.Record)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "record is not valid hex"})
			return
		}

		var fi flags.Instance
		s.mu.RLock()
		err = fi.Unpack(raw, s.registry)
		s.mu.RUnlock()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		observability.RecordInstanceUnpack()
		recordResolution(fi.Type)

		c.JSON(http.StatusOK, gin.H{
			"type":             typeJSON(fi.Type),
			"status":           fi.Status.String(),
			"endurance":        fi.Endurance.String(),
			"owner":            fi.Owner,
			"position":         fi.Position,
			"launch_position":  fi.LaunchPosition,
			"landing_position": fi.LandingPosition,
			"flight_time":      fi.FlightTime,
			"flight_end":       fi.FlightEnd,
			"initial_velocity": fi.InitialVelocity,
		})
	})
}

func recordResolution(ft *flags.Type) {
	switch ft {
	case flags.UnknownType:
		observability.RecordTypeDecode(observability.OutcomeUnknown)
	case flags.NullType:
		observability.RecordTypeDecode(observability.OutcomeNull)
	default:
		observability.RecordTypeDecode(observability.OutcomeKnown)
	}
}

func typeJSON(ft *flags.Type) gin.H {
	return gin.H{
		"abbrev":      ft.Abbrev,
		"name":        ft.Name,
		"label":       ft.Label(),
		"information": ft.Information(),
		"endurance":   ft.Endurance.String(),
		"quality":     ft.Quality.String(),
		"shot":        ft.Shot.String(),
		"team":        ft.Team.String(),
		"effect":      ft.Effect.String(),
		"custom":      ft.Custom,
	}
}

func typeListJSON(list []*flags.Type) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, ft := range list {
		out = append(out, typeJSON(ft))
	}
	return out
}
