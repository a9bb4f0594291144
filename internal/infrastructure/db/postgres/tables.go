package postgres

import "github.com/neplink/classifieds-api/internal/core/domain"

// Table specs for the four listing types. These are the only per-type pieces
// of the postgres layer; everything else is the generic repository.

func NewsTable() TableSpec[*domain.News] {
	return TableSpec[*domain.News]{
		Table:         "news",
		VisibilityCol: "published",
		Columns: []string{
			"title", "content", "category", "author", "image", "tags",
			"published", "owner_id", "created_at",
		},
		Values: func(n *domain.News) []any {
			return []any{
				n.Title, n.Content, n.Category, n.Author, n.Image, n.Tags,
				n.Published, n.OwnerID, n.CreatedAt,
			}
		},
		Scan: func(row rowScanner) (*domain.News, error) {
			n := &domain.News{}
			err := row.Scan(
				&n.ID, &n.Title, &n.Content, &n.Category, &n.Author, &n.Image,
				&n.Tags, &n.Published, &n.OwnerID, &n.CreatedAt,
			)
			return n, err
		},
	}
}

func MarketplaceTable() TableSpec[*domain.MarketplaceItem] {
	return TableSpec[*domain.MarketplaceItem]{
		Table:         "marketplace_items",
		VisibilityCol: "available",
		Columns: []string{
			"name", "description", "price", "category", "condition",
			"location", "images", "available", "owner_id", "created_at",
		},
		Values: func(m *domain.MarketplaceItem) []any {
			return []any{
				m.Name, m.Description, m.Price, m.Category, m.Condition,
				m.Location, m.Images, m.Available, m.OwnerID, m.CreatedAt,
			}
		},
		Scan: func(row rowScanner) (*domain.MarketplaceItem, error) {
			m := &domain.MarketplaceItem{}
			err := row.Scan(
				&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.Condition,
				&m.Location, &m.Images, &m.Available, &m.OwnerID, &m.CreatedAt,
			)
			return m, err
		},
	}
}

func JobsTable() TableSpec[*domain.Job] {
	return TableSpec[*domain.Job]{
		Table:         "jobs",
		VisibilityCol: "active",
		Columns: []string{
			"title", "description", "company", "location", "job_type", "category",
			"salary_min", "salary_max", "currency", "requirements",
			"contact_email", "contact_phone", "active", "owner_id", "created_at",
		},
		Values: func(j *domain.Job) []any {
			return []any{
				j.Title, j.Description, j.Company, j.Location, j.Type, j.Category,
				j.SalaryMin, j.SalaryMax, j.Currency, j.Requirements,
				j.ContactEmail, j.ContactPhone, j.Active, j.OwnerID, j.CreatedAt,
			}
		},
		Scan: func(row rowScanner) (*domain.Job, error) {
			j := &domain.Job{}
			err := row.Scan(
				&j.ID, &j.Title, &j.Description, &j.Company, &j.Location, &j.Type,
				&j.Category, &j.SalaryMin, &j.SalaryMax, &j.Currency, &j.Requirements,
				&j.ContactEmail, &j.ContactPhone, &j.Active, &j.OwnerID, &j.CreatedAt,
			)
			return j, err
		},
	}
}

func RentalsTable() TableSpec[*domain.Rental] {
	return TableSpec[*domain.Rental]{
		Table:         "rentals",
		VisibilityCol: "available",
		Columns: []string{
			"title", "description", "property_type", "street", "city", "state", "zip",
			"bedrooms", "bathrooms", "area", "rent", "currency", "amenities",
			"images", "contact_person", "contact_email", "contact_phone",
			"available", "owner_id", "created_at",
		},
		Values: func(r *domain.Rental) []any {
			return []any{
				r.Title, r.Description, r.PropertyType, r.Street, r.City, r.State, r.Zip,
				r.Bedrooms, r.Bathrooms, r.Area, r.Rent, r.Currency, r.Amenities,
				r.Images, r.ContactPerson, r.ContactEmail, r.ContactPhone,
				r.Available, r.OwnerID, r.CreatedAt,
			}
		},
		Scan: func(row rowScanner) (*domain.Rental, error) {
			r := &domain.Rental{}
			err := row.Scan(
				&r.ID, &r.Title, &r.Description, &r.PropertyType, &r.Street, &r.City,
				&r.State, &r.Zip, &r.Bedrooms, &r.Bathrooms, &r.Area, &r.Rent,
				&r.Currency, &r.Amenities, &r.Images, &r.ContactPerson, &r.ContactEmail,
				&r.ContactPhone, &r.Available, &r.OwnerID, &r.CreatedAt,
			)
			return r, err
		},
	}
}
