package http

import (
	"net/http"

	"mashupapi/internal/httpx"
	"mashupapi/internal/source"
)

type MusicHandler struct {
	svc MusicService

	// defaultPlaylistID comes from YOUTUBE_PLAYLIST_ID and is used when
	// the request does not name a playlist.
	defaultPlaylistID string
}

func NewMusicHandler(svc MusicService, defaultPlaylistID string) *MusicHandler {
	return &MusicHandler{svc: svc, defaultPlaylistID: defaultPlaylistID}
}

type playlistQuery struct {
	PlaylistID string `validate:"omitempty,playlist_id"`
}

func (h *MusicHandler) Playlist(w http.ResponseWriter, r *http.Request) {
	q := playlistQuery{PlaylistID: r.URL.Query().Get("playlist_id")}
	if verrs := ValidateStruct(q); verrs != nil {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "validation_error", "Invalid query parameters", details)
		return
	}

	playlistID := q.PlaylistID
	if playlistID == "" {
		playlistID = h.defaultPlaylistID
	}
	if playlistID == "" {
		writeSourceError(w, r, source.NotConfigured("youtube", "YOUTUBE_PLAYLIST_ID"))
		return
	}

	records, err := h.svc.Playlist(r.Context(), playlistID)
	if err != nil {
		writeSourceError(w, r, err)
		return
	}
	writeRecords(w, r, records, "playlist is empty")
}
