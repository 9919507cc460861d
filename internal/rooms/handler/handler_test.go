package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jeongyunjae/BangGuseokTV-backend/internal/account"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/middleware"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/rooms"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/session"
	"github.com/jeongyunjae/BangGuseokTV-backend/internal/token"
)

func setup(t *testing.T, store rooms.Store, cache *rooms.ListCache) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewService([]byte("test-secret"))
	h := NewHandler(store, cache)
	mw := middleware.NewSessionMiddleware(tokens)

	r := gin.New()
	r.Use(mw.Resolve())
	h.RegisterRoutes(r, mw)
	return r, tokens
}

func loginCookie(t *testing.T, tokens *token.Service, username string) *http.Cookie {
	t.Helper()

	tok, err := tokens.Issue(&account.Account{ID: uuid.New(), Username: username})
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: tok}
}

func do(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedRooms(store *rooms.MemoryStore, n int) {
	base := time.Now()
	for i := 0; i < n; i++ {
		store.Add(&rooms.Room{
			Username:  fmt.Sprintf("user%02d", i),
			Title:     fmt.Sprintf("room %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []rooms.Room {
	t.Helper()

	var body struct {
		Rooms []rooms.Room `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Rooms
}

func TestList_CapsAtPageSize(t *testing.T) {
	store := rooms.NewMemoryStore()
	seedRooms(store, rooms.PageSize+3)
	r, _ := setup(t, store, nil)

	rec := do(r, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeList(t, rec)
	require.Len(t, list, rooms.PageSize)
	require.Equal(t, "user14", list[0].Username, "newest room first")

	rec = do(r, http.MethodGet, "/rooms?page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 3)
}

func TestList_ServesFromCache(t *testing.T) {
	store := rooms.NewMemoryStore()
	seedRooms(store, 2)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r, _ := setup(t, store, rooms.NewListCache(client))

	rec := do(r, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, store.Lists())

	rec = do(r, http.MethodGet, "/rooms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 2)
	require.Equal(t, 1, store.Lists(), "second listing must hit the cache")
}

func TestList_WriteInvalidatesCache(t *testing.T) {
	store := rooms.NewMemoryStore()
	store.Add(&rooms.Room{Username: "alice"})

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r, tokens := setup(t, store, rooms.NewListCache(client))

	do(r, http.MethodGet, "/rooms", "")
	require.Equal(t, 1, store.Lists())

	rec := do(r, http.MethodPatch, "/rooms/profile",
		`{"title":"new title"}`, loginCookie(t, tokens, "alice"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	do(r, http.MethodGet, "/rooms", "")
	require.Equal(t, 2, store.Lists(), "write must invalidate the cache")
}

func TestGetByUsername(t *testing.T) {
	store := rooms.NewMemoryStore()
	store.Add(&rooms.Room{Username: "alice", Title: "hello"})
	r, _ := setup(t, store, nil)

	rec := do(r, http.MethodGet, "/rooms/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var room rooms.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))
	require.Equal(t, "hello", room.Title)

	rec = do(r, http.MethodGet, "/rooms/ghost", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMutations_RequireSession(t *testing.T) {
	store := rooms.NewMemoryStore()
	store.Add(&rooms.Room{Username: "alice"})
	r, _ := setup(t, store, nil)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodPatch, "/rooms/profile", `{"title":"t"}`},
		{http.MethodPatch, "/rooms/profile/thumbnail", `{"thumbnail":"x.png"}`},
		{http.MethodPost, "/rooms/playerlist", `{"host":"alice"}`},
	}

	for _, tc := range cases {
		rec := do(r, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusForbidden, rec.Code, tc.path)
	}
}

func TestUpdateProfileAndThumbnail(t *testing.T) {
	store := rooms.NewMemoryStore()
	store.Add(&rooms.Room{Username: "alice"})
	r, tokens := setup(t, store, nil)

	cookie := loginCookie(t, tokens, "alice")

	rec := do(r, http.MethodPatch, "/rooms/profile",
		`{"title":"my room","description":"come in"}`, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodPatch, "/rooms/profile/thumbnail",
		`{"thumbnail":"thumb.png"}`, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	room, err := store.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "my room", room.Title)
	require.Equal(t, "come in", room.Description)
	require.Equal(t, "thumb.png", room.Thumbnail)

	rec = do(r, http.MethodPatch, "/rooms/profile", `{}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code, "title is mandatory")
}

func TestJoinPlayerlist(t *testing.T) {
	store := rooms.NewMemoryStore()
	store.Add(&rooms.Room{Username: "alice"})
	r, tokens := setup(t, store, nil)

	cookie := loginCookie(t, tokens, "bob")

	rec := do(r, http.MethodPost, "/rooms/playerlist", `{"host":"alice"}`, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Joining twice is a no-op, not an error.
	rec = do(r, http.MethodPost, "/rooms/playerlist", `{"host":"alice"}`, cookie)
	require.Equal(t, http.StatusNoContent, rec.Code)

	room, err := store.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, room.Players)

	rec = do(r, http.MethodPost, "/rooms/playerlist", `{"host":"ghost"}`, cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
