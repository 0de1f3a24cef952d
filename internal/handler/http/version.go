package http

import (
	"net/http"
)

const buildCommitHeader = "X-Build-Commit"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)

	if commit := h.services.AppInfoService.GetBuildInfo(ctx).BuildCommit(); commit != "" {
		w.Header().Set(buildCommitHeader, commit)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
