// Package coralapitest runs an in-memory comment API for tests.
package coralapitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/middleware"
	"github.com/gitter-badger/talk-5/service/coralapi"
)

const defaultLimit = 20

// Server serves the user and comment endpoints under coralapi.BasePath.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    []community.Commenter
	comments []comment.Comment
	flags    []string
	bans     []community.BanRequest
	requests []Request
	failures map[string][]int
	limit    int
	session  *http.Cookie
	nextID   int
}

// Request is what the server saw, for assertions.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]interface{}
}

func NewServer() *Server {
	s := &Server{
		failures: map[string][]int{},
		limit:    defaultLimit,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middL := middleware.InitMiddleware("coralapitest")
	e.Use(echoMiddleware.RequestID(), middL.AddContext(), middL.ResponseLogger())
	e.Use(s.record, s.inject, s.auth)

	g := e.Group(coralapi.BasePath)
	g.GET("/user", s.listUsers)
	g.POST("/user/:id/role", s.setRole)
	g.POST("/user/:id/status", s.setStatus)
	g.GET("/stream", s.stream)
	g.POST("/comments", s.createComment)
	g.POST("/comments/:id/actions", s.flag)
	g.GET("/status/:code", s.status)

	s.Server = httptest.NewServer(e)
	return s
}

// SetUsers replaces the commenter list.
func (s *Server) SetUsers(users ...community.Commenter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]community.Commenter{}, users...)
}

func (s *Server) SetComments(comments ...comment.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append([]comment.Comment{}, comments...)
	s.nextID = len(comments)
}

func (s *Server) SetLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limit = limit
}

// RequireSession answers 401 to requests without this cookie.
func (s *Server) RequireSession(cookie *http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = cookie
}

// FailNext makes the next requests to path (without base and query) answer
// the given status codes, one per request.
func (s *Server) FailNext(path string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = append(s.failures[path], statuses...)
}

func (s *Server) Users() []community.Commenter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]community.Commenter{}, s.users...)
}

func (s *Server) Flags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.flags...)
}

func (s *Server) Bans() []community.BanRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]community.BanRequest{}, s.bans...)
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request{}, s.requests...)
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := Request{
			Method: c.Request().Method,
			Path:   c.Request().URL.Path,
			Query:  c.Request().URL.RawQuery,
			Header: c.Request().Header.Clone(),
		}
		if c.Request().ContentLength > 0 {
			body := map[string]interface{}{}
			if err := (&echo.DefaultBinder{}).BindBody(c, &body); err == nil {
				r.Body = body
			}
			c.Set("body", body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, r)
		s.mu.Unlock()
		return next(c)
	}
}

func (s *Server) inject(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := strings.TrimPrefix(c.Request().URL.Path, coralapi.BasePath)
		s.mu.Lock()
		statuses := s.failures[path]
		var status int
		if len(statuses) > 0 {
			status = statuses[0]
			s.failures[path] = statuses[1:]
		}
		s.mu.Unlock()
		if status != 0 {
			return c.JSON(status, map[string]string{"error": http.StatusText(status)})
		}
		return next(c)
	}
}

func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		want := s.session
		s.mu.Unlock()
		if want == nil {
			return next(c)
		}
		got, err := c.Cookie(want.Name)
		if err != nil || got.Value != want.Value {
			return c.NoContent(http.StatusUnauthorized)
		}
		return next(c)
	}
}

func bodyString(c echo.Context, key string) string {
	body, _ := c.Get("body").(map[string]interface{})
	v, _ := body[key].(string)
	return v
}

func (s *Server) listUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := append([]community.Commenter{}, s.users...)
	field := c.QueryParam("field")
	if field == "" {
		field = "userName"
	}
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i].UserName, users[j].UserName
		if field == "userId" {
			a, b = users[i].UserID, users[j].UserID
		}
		if c.QueryParam("sort") == "desc" {
			return a > b
		}
		return a < b
	})

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit := s.limit
	totalPages := (len(users) + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	from := page * limit
	if from > len(users) {
		from = len(users)
	}
	to := from + limit
	if to > len(users) {
		to = len(users)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"result":     users[from:to],
		"page":       page,
		"count":      len(users),
		"limit":      limit,
		"totalPages": totalPages,
	})
}

func (s *Server) setRole(c echo.Context) error {
	id := c.Param("id")
	role := bodyString(c, "role")
	if role == "" {
		return c.NoContent(http.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].UserID == id {
			s.users[i].Role = community.Role(role)
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.NoContent(http.StatusNotFound)
}

func (s *Server) setStatus(c echo.Context) error {
	id := c.Param("id")
	status := bodyString(c, "status")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].UserID == id {
			s.users[i].Status = community.Status(status)
			s.bans = append(s.bans, community.BanRequest{
				UserID:    id,
				UserName:  s.users[i].UserName,
				CommentID: bodyString(c, "comment_id"),
			})
			return c.NoContent(http.StatusNoContent)
		}
	}
	return c.NoContent(http.StatusNotFound)
}

func (s *Server) stream(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"comments": s.comments,
	})
}

func (s *Server) createComment(c echo.Context) error {
	body := bodyString(c, "body")
	if body == "" {
		return c.NoContent(http.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	cm := comment.Comment{
		ID:         fmt.Sprintf("c%d", s.nextID),
		Body:       body,
		AuthorName: bodyString(c, "author_name"),
	}
	s.comments = append(s.comments, cm)
	return c.JSON(http.StatusCreated, cm)
}

func (s *Server) flag(c echo.Context) error {
	if bodyString(c, "action_type") != "flag" {
		return c.NoContent(http.StatusBadRequest)
	}
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].Flagged = true
			s.flags = append(s.flags, id)
			return c.JSON(http.StatusCreated, map[string]string{"item_id": id, "action_type": "flag"})
		}
	}
	return c.NoContent(http.StatusNotFound)
}

// status answers with the requested code and a small JSON body.
func (s *Server) status(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if code == http.StatusNoContent {
		return c.NoContent(code)
	}
	return c.JSON(code, map[string]int{"status": code})
}
