package models

import "time"

// Transaction is one sales ledger row after the ingestion mapping step.
type Transaction struct {
	Contact     string    `json:"contact"`
	Customer    string    `json:"customer"`
	Date        time.Time `json:"date"`
	Categories  string    `json:"categories"`
	NewCustomer bool      `json:"new_customer"`
	Channel     string    `json:"channel"`
	P1          float64   `json:"p1"`
	UpP1        float64   `json:"up_p1"`
	UpP2        float64   `json:"up_p2"`
	P2Lead      string    `json:"p2_lead,omitempty"`
}

// HasDate reports whether the row carried a parsable date.
func (t Transaction) HasDate() bool { return !t.Date.IsZero() }

// Revenue is the row's combined P1 + UP P1 + UP P2 amount.
func (t Transaction) Revenue() float64 { return t.P1 + t.UpP1 + t.UpP2 }

// IsLead reports whether the P2 lead marker is present.
func (t Transaction) IsLead() bool { return t.P2Lead != "" }

// LinkedTransaction is a Transaction with the category label of the P1
// purchase it was upsold from, when a link exists.
type LinkedTransaction struct {
	Transaction
	OriginCategories string `json:"origin_categories,omitempty"`
}

func (l LinkedTransaction) Linked() bool { return l.OriginCategories != "" }

type CategoryAgg struct {
	Name         string        `json:"name"`
	P1Revenue    float64       `json:"p1_revenue"`
	UpP1Revenue  float64       `json:"up_p1_revenue"`
	UpP2Revenue  float64       `json:"up_p2_revenue"`
	TotalRevenue float64       `json:"total_revenue"`
	P1Bills      int           `json:"p1_bills"`
	UpP1Bills    int           `json:"up_p1_bills"`
	UpP2Bills    int           `json:"up_p2_bills"`
	NewCustomers int           `json:"new_customers"`
	Transactions []Transaction `json:"-"`
}

type UpsellPath struct {
	From         string              `json:"from"`
	To           string              `json:"to"`
	Count        int                 `json:"count"`
	UpP1Revenue  float64             `json:"up_p1_revenue"`
	Transactions []LinkedTransaction `json:"-"`
}

type PeriodSummary struct {
	TotalBills     int     `json:"total_bills"`
	TotalCustomers int     `json:"total_customers"`
	NewCustomers   int     `json:"new_customers"`
	OldCustomers   int     `json:"old_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
	P1Revenue      float64 `json:"p1_revenue"`
	UpP1Revenue    float64 `json:"up_p1_revenue"`
	UpP2Revenue    float64 `json:"up_p2_revenue"`
	P1Bills        int     `json:"p1_bills"`
	P2Leads        int     `json:"p2_leads"`
	UpP1Bills      int     `json:"up_p1_bills"`
	UpP2Bills      int     `json:"up_p2_bills"`
}

type ChannelAgg struct {
	Name         string  `json:"name"`
	P1Bills      int     `json:"p1_bills"`
	P2Leads      int     `json:"p2_leads"`
	UpP2Bills    int     `json:"up_p2_bills"`
	NewCustomers int     `json:"new_customers"`
	Revenue      float64 `json:"revenue"`
}

// Insights are the ad-platform figures reported per campaign, per ad and in total.
type Insights struct {
	Spend                  float64 `json:"spend"`
	Impressions            float64 `json:"impressions"`
	Purchases              float64 `json:"purchases"`
	MessagingConversations float64 `json:"messaging_conversations"`
	CPM                    float64 `json:"cpm"`
	CTR                    float64 `json:"ctr"`
}

type Ad struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Insights     Insights `json:"insights"`
}

type Campaign struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Insights Insights `json:"insights"`
	Ads      []Ad     `json:"ads,omitempty"`
}

type DailySpend struct {
	Date  time.Time `json:"date"`
	Spend float64   `json:"spend"`
}

// AdsReport is the ad metrics provider's answer for one date range.
type AdsReport struct {
	Since      time.Time    `json:"since"`
	Until      time.Time    `json:"until"`
	Campaigns  []Campaign   `json:"campaigns"`
	Totals     Insights     `json:"totals"`
	DailySpend []DailySpend `json:"daily_spend"`
}
