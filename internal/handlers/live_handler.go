package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	apperrors "propcalc/internal/errors"
	"propcalc/internal/logger"
	"propcalc/internal/ratelimit"
	"propcalc/internal/services"
)

const (
	liveMaxFrameBytes = 4096
	liveWriteTimeout  = 5 * time.Second
)

// LiveFrame is one recalculation request on the live channel. Values are raw
// form strings, parsed the same way as the form endpoint.
type LiveFrame struct {
	PropertyPrice      string `json:"property_price"`
	DownPaymentPercent string `json:"down_payment_percent"`
	MonthlyRent        string `json:"monthly_rent"`
	Currency           string `json:"currency" binding:"omitempty,iso4217"`
}

// LiveHandler recalculates on every frame received over a websocket, so a
// form can show results as the user types.
type LiveHandler struct {
	calculatorService services.CalculatorServicer
	limiter           ratelimit.Limiter
	upgrader          websocket.Upgrader
	log               *zap.SugaredLogger
}

// NewLiveHandler creates a LiveHandler. Every frame counts against limiter
// under the client IP. allowedOrigin "*" accepts any origin; otherwise the
// Origin header must match exactly or be absent.
func NewLiveHandler(calculatorService services.CalculatorServicer, limiter ratelimit.Limiter, allowedOrigin string) *LiveHandler {
	return &LiveHandler{
		calculatorService: calculatorService,
		limiter:           limiter,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowedOrigin == "*" || origin == "" || origin == allowedOrigin
			},
		},
		log: logger.Named("live"),
	}
}

// Serve upgrades the connection and answers each frame with a result or an
// error envelope. Malformed frames get an error reply; the socket stays open.
// @Summary     Live calculator channel
// @Description Websocket. Send LiveFrame JSON text frames, receive ROIResponse or ErrorResponse frames.
// @Tags        calculator
// @Success     101 {object} ROIResponse "Switching protocols"
// @Router      /calculator/live [get]
func (h *LiveHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.log.Warnw("websocket upgrade failed", "error", err, "client_ip", c.ClientIP())
		return
	}
	defer conn.Close()

	conn.SetReadLimit(liveMaxFrameBytes)
	clientIP := c.ClientIP()
	h.log.Debugw("client connected", "client_ip", clientIP)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warnw("websocket read failed", "error", err, "client_ip", clientIP)
			}
			return
		}

		var reply any
		if h.allow(c.Request.Context(), clientIP) {
			reply = h.handleFrame(msgType, data)
		} else {
			reply = errorBody(apperrors.ErrRateLimited)
		}

		payload, err := json.Marshal(reply)
		if err != nil {
			h.log.Errorw("failed to encode live reply", "error", err, "client_ip", clientIP)
			payload, _ = json.Marshal(errorBody(apperrors.ErrInternalServer))
		}

		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warnw("websocket write failed", "error", err, "client_ip", clientIP)
			return
		}
	}
}

// allow fails open when the limiter backend is unavailable.
func (h *LiveHandler) allow(ctx context.Context, clientIP string) bool {
	ok, err := h.limiter.Allow(ctx, clientIP)
	if err != nil {
		h.log.Warnw("rate limiter unavailable, allowing frame", "error", err, "client_ip", clientIP)
		return true
	}
	return ok
}

func (h *LiveHandler) handleFrame(msgType int, data []byte) any {
	if msgType != websocket.TextMessage {
		return errorBody(apperrors.ErrUnsupportedFrame)
	}

	var frame LiveFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return errorBody(apperrors.WithMessage(apperrors.ErrInvalidInput, "Frame is not a valid JSON object"))
	}
	if err := binding.Validator.ValidateStruct(&frame); err != nil {
		return errorBody(apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
	}

	result, err := h.calculatorService.CalculateForm(frame.PropertyPrice, frame.DownPaymentPercent, frame.MonthlyRent)
	if err != nil {
		return errorBody(err)
	}
	return newROIResponse(result, frame.Currency)
}

func errorBody(err error) apperrors.ErrorResponse {
	_, body := apperrors.Response(err)
	return body
}
