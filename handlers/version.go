package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
)

// buildVersion is set with -ldflags "-X cineworld/handlers.buildVersion=v1.2.3".
var buildVersion string

var (
	version     string
	versionOnce sync.Once
)

type VersionHandler struct{}

type VersionResponse struct {
	Version string `json:"version"`
}

func NewVersionHandler() *VersionHandler {
	return &VersionHandler{}
}

// GetBackendVersion returns the linked build version, else the contents of
// version.txt, else "dev". The result is cached after the first call.
func GetBackendVersion() string {
	versionOnce.Do(func() {
		if v := strings.TrimSpace(buildVersion); v != "" {
			version = v
			return
		}
		for _, path := range []string{"version.txt", "/app/version.txt"} {
			if data, err := os.ReadFile(path); err == nil {
				if v := strings.TrimSpace(string(data)); v != "" {
					version = v
					return
				}
			}
		}
		version = "dev"
	})
	return version
}

func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VersionResponse{
		Version: GetBackendVersion(),
	})
}
