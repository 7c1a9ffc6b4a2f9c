package domain

import "time"

// User roles
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

// User represents a registered tenant or landlord
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255)" json:"-"`
	Name      string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Phone     *string   `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Role      string    `gorm:"column:role;type:enum('tenant','landlord');default:'tenant'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// PublicUser is the user shape exposed to other users
type PublicUser struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ToPublic strips private fields
func (u *User) ToPublic() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Role: u.Role}
}

// Property represents a rental listing owned by a landlord
type Property struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LandlordID   uint64    `gorm:"column:landlord_id;index" json:"landlord_id"`
	Title        string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Address      string    `gorm:"column:address;type:varchar(255)" json:"address"`
	City         string    `gorm:"column:city;type:varchar(100);index" json:"city"`
	PostalCode   string    `gorm:"column:postal_code;type:varchar(10)" json:"postal_code"`
	Price        int       `gorm:"column:price" json:"price"`
	Deposit      *int      `gorm:"column:deposit" json:"deposit,omitempty"`
	Rooms        int       `gorm:"column:rooms" json:"rooms"`
	SizeM2       *int      `gorm:"column:size_m2" json:"size_m2,omitempty"`
	PropertyType string    `gorm:"column:property_type;type:enum('apartment','house','room','townhouse');default:'apartment'" json:"property_type"`
	Available    bool      `gorm:"column:available;default:true" json:"available"`
	ImageURL     *string   `gorm:"column:image_url;type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Set per viewer, never persisted
	IsFavorite *bool `gorm:"-" json:"is_favorite,omitempty"`
}

func (Property) TableName() string { return "properties" }

// Favorite marks a property saved by a user
type Favorite struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_fav_user_property,unique" json:"user_id"`
	PropertyID uint64    `gorm:"column:property_id;index:idx_fav_user_property,unique" json:"property_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }

// Message is a directed message between two users, optionally scoped
// to one property. Immutable after insert except the read flag.
type Message struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FromUserID uint64    `gorm:"column:from_user_id;index" json:"from_user_id"`
	ToUserID   uint64    `gorm:"column:to_user_id;index" json:"to_user_id"`
	PropertyID *uint64   `gorm:"column:property_id;index" json:"property_id,omitempty"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	Read       bool      `gorm:"column:is_read;default:false" json:"read"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

// EnrichedMessage is a message with resolved display fields for the inbox view
type EnrichedMessage struct {
	Message
	FromUserName  string  `json:"from_user_name"`
	ToUserName    string  `json:"to_user_name"`
	PropertyTitle *string `json:"property_title,omitempty"`
}

// PropertyFilter holds search filter parameters
type PropertyFilter struct {
	City          string
	MinPrice      int
	MaxPrice      int
	MinRooms      int
	PropertyType  string
	AvailableOnly bool
	Page          int
	PerPage       int
}

// RegisterRequest is the signup payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=tenant landlord"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreatePropertyRequest is the listing creation payload
type CreatePropertyRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	PostalCode   string  `json:"postal_code"`
	Price        int     `json:"price" binding:"required,gt=0"`
	Deposit      *int    `json:"deposit"`
	Rooms        int     `json:"rooms" binding:"required,gt=0"`
	SizeM2       *int    `json:"size_m2"`
	PropertyType string  `json:"property_type" binding:"omitempty,oneof=apartment house room townhouse"`
	ImageURL     *string `json:"image_url"`
}

// UpdatePropertyRequest is the listing update payload; nil fields are unchanged
type UpdatePropertyRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	PostalCode   *string `json:"postal_code"`
	Price        *int    `json:"price"`
	Deposit      *int    `json:"deposit"`
	Rooms        *int    `json:"rooms"`
	SizeM2       *int    `json:"size_m2"`
	PropertyType *string `json:"property_type"`
	Available    *bool   `json:"available"`
	ImageURL     *string `json:"image_url"`
}

// SendMessageRequest is the message submission payload
type SendMessageRequest struct {
	ToUserID   uint64  `json:"to_user_id" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	PropertyID *uint64 `json:"property_id"`
}
