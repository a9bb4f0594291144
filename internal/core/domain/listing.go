package domain

import "time"

// Listing is the contract every listing type satisfies so that repositories
// and services can be written once. T is the concrete pointer type
// (self-referential constraint), which lets Clone return the right type.
type Listing[T any] interface {
	GetID() int64
	SetID(id int64)
	GetOwnerID() int64
	// IsVisible reports whether non-privileged reads may see the record.
	// The backing flag is published/available/active depending on the type.
	IsVisible() bool
	SetCreatedAt(t time.Time)
	Clone() T
}

// NewsCategories is the closed category set for news articles.
var NewsCategories = []string{"Politics", "Culture", "Technology", "Business", "Sports", "Other"}

// News is an article. Unpublished articles are visible to admins only.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Image     string    `json:"image,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Published bool      `json:"published"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *News) GetID() int64             { return n.ID }
func (n *News) SetID(id int64)           { n.ID = id }
func (n *News) GetOwnerID() int64        { return n.OwnerID }
func (n *News) IsVisible() bool          { return n.Published }
func (n *News) SetCreatedAt(t time.Time) { n.CreatedAt = t }

func (n *News) Clone() *News {
	c := *n
	c.Tags = append([]string(nil), n.Tags...)
	return &c
}

// MarketplaceCategories and MarketplaceConditions are the closed sets for
// marketplace items.
var (
	MarketplaceCategories = []string{"Traditional", "Modern", "Food", "Clothing", "Electronics", "Other"}
	MarketplaceConditions = []string{"New", "Like New", "Good", "Fair", "Poor"}
)

// MarketplaceItem is an item offered for sale.
type MarketplaceItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Location    string    `json:"location"`
	Images      []string  `json:"images,omitempty"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (m *MarketplaceItem) GetID() int64             { return m.ID }
func (m *MarketplaceItem) SetID(id int64)           { m.ID = id }
func (m *MarketplaceItem) GetOwnerID() int64        { return m.OwnerID }
func (m *MarketplaceItem) IsVisible() bool          { return m.Available }
func (m *MarketplaceItem) SetCreatedAt(t time.Time) { m.CreatedAt = t }

func (m *MarketplaceItem) Clone() *MarketplaceItem {
	c := *m
	c.Images = append([]string(nil), m.Images...)
	return &c
}

var (
	JobTypes      = []string{"Full-time", "Part-time", "Contract", "Freelance", "Internship", "Remote"}
	JobCategories = []string{"IT", "Education", "Healthcare", "Finance", "Hospitality", "Retail", "Other"}
)

// Job is an employment posting. Inactive postings are hidden from the public.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	SalaryMin    float64   `json:"salary_min,omitempty"`
	SalaryMax    float64   `json:"salary_max,omitempty"`
	Currency     string    `json:"currency"`
	Requirements []string  `json:"requirements,omitempty"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Active       bool      `json:"active"`
	OwnerID      int64     `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (j *Job) GetID() int64             { return j.ID }
func (j *Job) SetID(id int64)           { j.ID = id }
func (j *Job) GetOwnerID() int64        { return j.OwnerID }
func (j *Job) IsVisible() bool          { return j.Active }
func (j *Job) SetCreatedAt(t time.Time) { j.CreatedAt = t }

func (j *Job) Clone() *Job {
	c := *j
	c.Requirements = append([]string(nil), j.Requirements...)
	return &c
}

var PropertyTypes = []string{"Apartment", "House", "Room", "Commercial", "Other"}

// Rental is a property listing.
type Rental struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	PropertyType  string    `json:"property_type"`
	Street        string    `json:"street"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Zip           string    `json:"zip,omitempty"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Area          float64   `json:"area"`
	Rent          float64   `json:"rent"`
	Currency      string    `json:"currency"`
	Amenities     []string  `json:"amenities,omitempty"`
	Images        []string  `json:"images,omitempty"`
	ContactPerson string    `json:"contact_person"`
	ContactEmail  string    `json:"contact_email"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	Available     bool      `json:"available"`
	OwnerID       int64     `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r *Rental) GetID() int64             { return r.ID }
func (r *Rental) SetID(id int64)           { r.ID = id }
func (r *Rental) GetOwnerID() int64        { return r.OwnerID }
func (r *Rental) IsVisible() bool          { return r.Available }
func (r *Rental) SetCreatedAt(t time.Time) { r.CreatedAt = t }

func (r *Rental) Clone() *Rental {
	c := *r
	c.Amenities = append([]string(nil), r.Amenities...)
	c.Images = append([]string(nil), r.Images...)
	return &c
}

// DefaultCurrency is applied when a job or rental omits the currency field.
const DefaultCurrency = "NPR"
