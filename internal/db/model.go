package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

// Post status values. Only draft -> published is exercised by the service.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

func init() {
	orm.RegisterTable((*PostCategory)(nil))
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Bio       *string   `pg:"bio"`
	Avatar    *string   `pg:"avatar"`
	CreatedAt time.Time `pg:"created_at,default:now()"`
	UpdatedAt time.Time `pg:"updated_at,default:now()"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int     `pg:"id,pk"`
	Title       string  `pg:"title,use_zero"`
	Description *string `pg:"description"`

	Posts []Post `pg:"many2many:post_categories"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int        `pg:"id,pk"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Excerpt     *string    `pg:"excerpt"`
	Content     *string    `pg:"content"`
	AuthorID    int        `pg:"author_id,use_zero"`
	Status      string     `pg:"status,use_zero"`
	PublishedOn *time.Time `pg:"published_on"`
	CreatedAt   time.Time  `pg:"created_at,default:now()"`
	UpdatedAt   time.Time  `pg:"updated_at,default:now()"`

	Author     *Author    `pg:"fk:author_id,rel:has-one"`
	Categories []Category `pg:"many2many:post_categories"`
}

// PostCategory is the posts <-> categories join table.
type PostCategory struct {
	tableName struct{} `pg:"post_categories,alias:t"`

	PostID     int `pg:"post_id,pk"`
	CategoryID int `pg:"category_id,pk"`
}

// Showcase holds one instance of every supported field primitive.
// It carries no business invariant and exists for demonstration only.
type Showcase struct {
	tableName struct{} `pg:"showcase,alias:t,discard_unknown_columns"`

	ID        int                    `pg:"id,pk"`
	Text      string                 `pg:"text,use_zero"`
	Textarea  string                 `pg:"textarea,use_zero"`
	RichText  *string                `pg:"rich_text"`
	Number    float64                `pg:"number,use_zero"`
	Checkbox  bool                   `pg:"checkbox,use_zero"`
	Date      time.Time              `pg:"date,use_zero"`
	Email     string                 `pg:"email,use_zero"`
	Select    string                 `pg:"select,use_zero"`
	Radio     string                 `pg:"radio,use_zero"`
	JSON      map[string]interface{} `pg:"json"`
	CreatedAt time.Time              `pg:"created_at,default:now()"`
}
