package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
	"github.com/tartampluch/go-dialog-calendar/internal/feed"
)

// cacheItem stores the rendered feed and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// ChatServer hosts date picker widgets in memory and exposes them over HTTP,
// standing in for a chat platform: it creates messages, routes taps to the
// DialogCalendar and applies the resulting grid edits.
type ChatServer struct {
	// cache uses atomic.Pointer for lock-free reads of the feed.
	cache    atomic.Pointer[cacheItem]
	Port     string
	BindAddr string
	Calendar *engine.DialogCalendar

	mu       sync.RWMutex
	messages map[int]*message
	lastID   int
	entries  []feed.Entry
}

// NewChatServer creates a new instance of the server.
func NewChatServer(bindAddr, port string, cal *engine.DialogCalendar) *ChatServer {
	if bindAddr == "" {
		bindAddr = config.LocalhostBindAddr
	}
	return &ChatServer{
		Port:     port,
		BindAddr: bindAddr,
		Calendar: cal,
		messages: make(map[int]*message),
	}
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ChatServer) Start(ctx context.Context) error {
	if err := config.ValidatePort(s.Port); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         s.BindAddr + config.AddrSeparator + s.Port,
		Handler:      s.routes(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

func (s *ChatServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteMessages, s.handleCreateMessage)
	mux.HandleFunc(config.RouteMessage, s.handleGetMessage)
	mux.HandleFunc(config.RouteCallback, s.handleCallback)
	mux.HandleFunc(config.RouteFeed, s.handleFeedRequest)
	return mux
}

// Update atomically replaces the served feed.
func (s *ChatServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	lastMod := time.Now().UTC().Format(http.TimeFormat)

	// Readers see either the old or the new item, never a partial one.
	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: lastMod,
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// recordSelection appends a resolved date and rebuilds the feed. The feed is
// rebuilt under s.mu so concurrent selections publish in order.
func (s *ChatServer) recordSelection(entry feed.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	data, err := feed.Encode(s.entries, s.Calendar.Now())
	if err != nil {
		return err
	}
	s.Update(data)
	return nil
}

// handleFeedRequest serves the ICS feed with HTTP caching support.
// Method validation is done by the GET route pattern, which also admits HEAD.
func (s *ChatServer) handleFeedRequest(w http.ResponseWriter, r *http.Request) {
	// 1. Load Data (Atomic / Lock-Free)
	item := s.cache.Load()

	// 2. Readiness Check: nothing was picked yet.
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	// 3. Set Response Headers
	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// 4. Check Conditional Headers (Browser Caching)
	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				// Not newer than the client copy.
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	// 5. Serve Content (HEAD stops at the headers)
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
