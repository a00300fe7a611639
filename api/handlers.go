package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ugparu/recdl"
	"github.com/ugparu/recdl/app"
	"github.com/ugparu/recdl/session"
	"github.com/ugparu/recdl/utils/logger"
)

type modeView struct {
	Mode          recdl.DisplayMode `json:"mode"`
	Name          string            `json:"name"`
	Width         uint              `json:"width"`
	Height        uint              `json:"height"`
	FrameRate     float64           `json:"frameRate"`
	FrameInterval string            `json:"frameInterval"`
	Dominance     string            `json:"dominance"`
}

type deviceResponse struct {
	Device      *recdl.DeviceDescriptor `json:"device"`
	Description app.Description         `json:"description"`
	Modes       []modeView              `json:"modes"`
}

type compatibilityResponse struct {
	Style bool `json:"style"`
	Clap  bool `json:"clap"`
	Field bool `json:"field"`
	OK    bool `json:"ok"`
}

type recordingRequest struct {
	Seconds  *int   `json:"seconds"`
	Path     string `json:"path"`
	AutoQuit *bool  `json:"autoQuit"`
}

func (s *Server) getDevice(c *gin.Context) {
	cat := s.app.Catalog()
	resp := deviceResponse{Description: s.app.Describe(), Modes: []modeView{}}
	if desc, ok := cat.Device(); ok {
		resp.Device = &desc
	}
	for _, info := range cat.Modes() {
		resp.Modes = append(resp.Modes, modeView{
			Mode:          info.Mode,
			Name:          info.Name,
			Width:         info.Width,
			Height:        info.Height,
			FrameRate:     info.FrameRate(),
			FrameInterval: info.FrameInterval().String(),
			Dominance:     info.Dominance.String(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Snapshot())
}

func (s *Server) putSettings(c *gin.Context) {
	snap := s.app.Snapshot()
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.app.Update(snap); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) getCompatibility(c *gin.Context) {
	compat := s.app.Compatibility()
	c.JSON(http.StatusOK, compatibilityResponse{
		Style: compat.Style,
		Clap:  compat.Clap,
		Field: compat.Field,
		OK:    compat.OK(),
	})
}

func (s *Server) resetStyle(c *gin.Context) {
	d, err := s.app.ResetStyle()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) putStyle(c *gin.Context) {
	offset, err := s.app.SetVideoStyle(c.Param("name"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"videoStyle": c.Param("name"), "offset": offset})
}

func (s *Server) putMode(c *gin.Context) {
	var mode recdl.DisplayMode
	if err := mode.UnmarshalText([]byte(c.Param("code"))); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	d, err := s.app.SetDisplayMode(mode)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) startSession(c *gin.Context) {
	if err := s.app.StartSession(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.app.Status())
}

func (s *Server) stopSession(c *gin.Context) {
	if err := s.app.StopSession(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.app.Status())
}

func (s *Server) restartSession(c *gin.Context) {
	if err := s.app.RestartSession(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.app.Status())
}

func (s *Server) startRecording(c *gin.Context) {
	var req recordingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.AutoQuit != nil {
		if err := s.app.SetAutoQuit(*req.AutoQuit); err != nil {
			s.fail(c, err)
			return
		}
	}
	seconds := s.app.Snapshot().MaxSeconds
	if req.Seconds != nil {
		seconds = *req.Seconds
	}

	path, err := s.app.StartRecording(c.Request.Context(), seconds, req.Path)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "status": s.app.Status()})
}

func (s *Server) stopRecording(c *gin.Context) {
	if err := s.app.StopRecording(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.app.Status())
}

func (s *Server) toggleRecording(c *gin.Context) {
	path, err := s.app.ToggleRecording(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path, "status": s.app.Status()})
}

func (s *Server) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.app.Status())
}

func (s *Server) fail(c *gin.Context, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Errorf(s, "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	var (
		busy          *session.BusyError
		startedAlr    *session.StartedAlreadyError
		notStarted    *session.NotStartedError
		recordingAlr  *session.RecordingAlreadyError
		notRecording  *session.NotRecordingError
		notConfigured *session.NotConfiguredError
		noDevice      *app.NoDeviceError
		unresolvable  *app.UnresolvableError
	)
	switch {
	case errors.As(err, &busy), errors.As(err, &startedAlr), errors.As(err, &notStarted),
		errors.As(err, &recordingAlr), errors.As(err, &notRecording):
		return http.StatusConflict
	case errors.As(err, &noDevice), errors.As(err, &unresolvable), errors.As(err, &notConfigured):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
