package admin

// LoginResponse carries the token issued for a successful credential
// exchange. The token may be absent on malformed server responses; the
// session manager rejects those.
type LoginResponse struct {
	Token string `json:"token"`
}

// User is a platform account as listed in the admin console.
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// UsersPage is the payload of the user list endpoint.
type UsersPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// UserRequest creates or updates a user.
type UserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// Stat is one dashboard summary card.
type Stat struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Value          string `json:"value"`
	Change         string `json:"change"`
	IsPositive     bool   `json:"isPositive"`
	Icon           string `json:"icon"`
	IconColorClass string `json:"iconColorClass"`
	IconBgClass    string `json:"iconBgClass"`
}

// TrendPoint is one point of the request/token trend chart.
type TrendPoint struct {
	Date     string `json:"date"`
	Requests int    `json:"requests"`
	Tokens   int    `json:"tokens"`
}

// AIModel describes one resold model and its usage share.
type AIModel struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Provider        string            `json:"provider"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Icon            string            `json:"icon"`
	Color           map[string]string `json:"color"`
	BackgroundColor map[string]string `json:"backgroundColor"`
	TextColor       map[string]string `json:"textColor"`
	Stats           map[string]string `json:"stats"`
}

// DashboardData is the payload of the dashboard endpoint.
type DashboardData struct {
	Stats       []Stat       `json:"stats"`
	TrendData   []TrendPoint `json:"trendData"`
	Models      []AIModel    `json:"models"`
	ChartColors []string     `json:"chartColors"`
}

// ServiceInfo is one resold API service.
type ServiceInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	Icon        string `json:"icon"`
	Bg          string `json:"bg"`
}

// ServicesPage is the payload of the service list endpoint.
type ServicesPage struct {
	Services []ServiceInfo `json:"services"`
	Total    int           `json:"total"`
}

// ServiceRequest creates a service.
type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Ticket is one support ticket.
type Ticket struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Created  string `json:"created"`
	Category string `json:"category"`
}

// TicketsPage is the payload of the ticket list endpoint.
type TicketsPage struct {
	Tickets []Ticket `json:"tickets"`
	Total   int      `json:"total"`
}

// TicketRequest opens a support ticket.
type TicketRequest struct {
	Subject  string `json:"subject"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// TicketReply is one reply on a ticket thread.
type TicketReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	IsStaff bool   `json:"is_staff"`
	Created string `json:"created_at"`
}

// TicketReplyRequest adds a reply to a ticket.
type TicketReplyRequest struct {
	Content string `json:"content"`
	IsStaff bool   `json:"is_staff"`
}

// Announcement is one platform announcement.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	Tag         string `json:"tag"`
	Color       string `json:"color"`
	Status      string `json:"status"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// AnnouncementsPage is the payload of the announcement list endpoint.
type AnnouncementsPage struct {
	Announcements []Announcement `json:"announcements"`
	Total         int            `json:"total"`
}

// AnnouncementRequest creates an announcement.
type AnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Tag     string `json:"tag"`
	Color   string `json:"color"`
	Status  string `json:"status"`
}

// TokenUsagePoint is one slice of the per-model token usage chart.
type TokenUsagePoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TokenUsageData is the payload of the token usage endpoint.
type TokenUsageData struct {
	Data []TokenUsagePoint `json:"data"`
}
