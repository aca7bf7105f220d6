package http

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"newsdesk/internal/handler/http/respond"
)

// DiagResponse reports database connectivity and configuration presence.
// It intentionally reveals only whether values are set, never the values.
type DiagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	AdminToken       string   `json:"admin_token"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagHandler implements the /test diagnostic endpoint.
type DiagHandler struct {
	DB *mongo.Database

	// Presence flags resolved at startup from the loaded configuration.
	DatabaseURLSet  bool
	DatabaseNameSet bool
	AdminTokenSet   bool
}

func (h *DiagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := DiagResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      presence(h.DatabaseURLSet),
		DatabaseName:     presence(h.DatabaseNameSet),
		AdminToken:       presence(h.AdminTokenSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		names, err := h.DB.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			resp.Database = "error: " + respond.Truncate(respond.Sanitize(err))
		} else {
			resp.Database = "connected"
			resp.ConnectionStatus = "connected"
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
