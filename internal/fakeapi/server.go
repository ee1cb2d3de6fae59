// Package fakeapi is a local stand-in for the users/orders microservices. It
// speaks the same wire contract (the {data: ...} envelope, {message: ...}
// errors) so the console can run and be tested without the real services. It
// is not the product: state lives in memory and dies with the process.
package fakeapi

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/microservices-manager/admin-console/internal/domain"
)

type Server struct {
	engine *gin.Engine

	mu          sync.Mutex
	users       []domain.User
	orders      []domain.Order
	nextUserID  int64
	nextOrderID int64
}

func New() *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{nextUserID: 1, nextOrderID: 1}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.POST("/users", s.createUser)
		api.PUT("/users/:id", s.updateUser)
		api.DELETE("/users/:id", s.deleteUser)

		api.GET("/orders", s.listOrders)
		api.GET("/orders/:id", s.getOrder)
		api.GET("/orders/user/:userId", s.listOrdersByUser)
		api.GET("/orders/status/:status", s.listOrdersByStatus)
		api.POST("/orders", s.createOrder)
		api.PUT("/orders/:id", s.updateOrder)
		api.DELETE("/orders/:id", s.deleteOrder)
	}

	s.engine = r
	return s
}

// Handler exposes the engine for httptest and for custom servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the given address until the process exits.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Seed loads demo records so a fresh console has something to show.
func (s *Server) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = []domain.User{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com"},
	}
	s.nextUserID = 3
	s.orders = []domain.Order{
		{ID: 1, UserID: 1, ProductName: "Widget", Quantity: 3, Price: 9.99, Status: domain.StatusPending},
		{ID: 2, UserID: 2, ProductName: "Gadget", Quantity: 1, Price: 24.5, Status: domain.StatusShipped},
	}
	s.nextOrderID = 3
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	c.JSON(http.StatusOK, gin.H{"data": users})
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			c.JSON(http.StatusOK, gin.H{"data": u})
			return
		}
	}
	fail(c, http.StatusNotFound, "user not found")
}

func validateUser(p domain.UserPayload) string {
	if p.Name == "" {
		return "name is required"
	}
	if p.Email == "" {
		return "email is required"
	}
	if !strings.Contains(p.Email, "@") {
		return "email must contain '@'"
	}
	return ""
}

func (s *Server) createUser(c *gin.Context) {
	var p domain.UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateUser(p); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{ID: s.nextUserID, Name: p.Name, Email: p.Email, Phone: p.Phone}
	s.nextUserID++
	s.users = append(s.users, u)
	c.JSON(http.StatusCreated, gin.H{"data": u})
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var p domain.UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := validateUser(p); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users[i] = domain.User{ID: id, Name: p.Name, Email: p.Email, Phone: p.Phone}
			c.JSON(http.StatusOK, gin.H{"data": s.users[i]})
			return
		}
	}
	fail(c, http.StatusNotFound, "user not found")
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
			return
		}
	}
	fail(c, http.StatusNotFound, "user not found")
}

func (s *Server) listOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			c.JSON(http.StatusOK, gin.H{"data": o})
			return
		}
	}
	fail(c, http.StatusNotFound, "order not found")
}

func (s *Server) listOrdersByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (s *Server) listOrdersByStatus(c *gin.Context) {
	status, err := domain.ParseOrderStatus(c.Param("status"))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			orders = append(orders, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (s *Server) validateOrderLocked(p domain.OrderPayload) string {
	userExists := false
	for _, u := range s.users {
		if u.ID == p.UserID {
			userExists = true
			break
		}
	}
	if !userExists {
		return "user does not exist"
	}
	if p.ProductName == "" {
		return "productName is required"
	}
	if p.Quantity < 1 {
		return "quantity must be at least 1"
	}
	if p.Price < 0 {
		return "price must not be negative"
	}
	if p.Status != "" {
		if _, err := domain.ParseOrderStatus(string(p.Status)); err != nil {
			return err.Error()
		}
	}
	return ""
}

func (s *Server) createOrder(c *gin.Context) {
	var p domain.OrderPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg := s.validateOrderLocked(p); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}
	status := p.Status
	if status == "" {
		status = domain.StatusPending
	}
	o := domain.Order{
		ID:          s.nextOrderID,
		UserID:      p.UserID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Status:      status,
	}
	s.nextOrderID++
	s.orders = append(s.orders, o)
	c.JSON(http.StatusCreated, gin.H{"data": o})
}

func (s *Server) updateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var p domain.OrderPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg := s.validateOrderLocked(p); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}
	status := p.Status
	if status == "" {
		status = domain.StatusPending
	}
	for i, o := range s.orders {
		if o.ID == id {
			s.orders[i] = domain.Order{
				ID:          id,
				UserID:      p.UserID,
				ProductName: p.ProductName,
				Quantity:    p.Quantity,
				Price:       p.Price,
				Status:      status,
			}
			c.JSON(http.StatusOK, gin.H{"data": s.orders[i]})
			return
		}
	}
	fail(c, http.StatusNotFound, "order not found")
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": id}})
			return
		}
	}
	fail(c, http.StatusNotFound, "order not found")
}
