package content

// Type identifies a kind of likeable/viewable entity on the platform.
// Each type maps to its own storage table and counter-field conventions.
type Type string

const (
	TypeMedia      Type = "media"
	TypeDevotional Type = "devotional"
	TypeArtist     Type = "artist"
	TypeMerch      Type = "merch"
	TypeEbook      Type = "ebook"
	TypePodcast    Type = "podcast"
	TypeForumPost  Type = "forum_post"
	TypePrayer     Type = "prayer"
)

// Vocabulary is the outward label a like-toggle carries for a content type.
// Artists are "followed" and merch is "favorited"; the toggle mechanism is
// identical, only the label and counter column differ.
type Vocabulary string

const (
	VocabularyLike     Vocabulary = "like"
	VocabularyFollow   Vocabulary = "follow"
	VocabularyFavorite Vocabulary = "favorite"
)

// ViewPolicy selects which qualification thresholds apply when deciding
// whether an engagement event counts as a view.
type ViewPolicy string

const (
	// ViewPolicyAudiovisual applies to playback content (media, podcasts).
	ViewPolicyAudiovisual ViewPolicy = "audiovisual"

	// ViewPolicyText applies to reading content (devotionals, ebooks, posts).
	ViewPolicyText ViewPolicy = "text"
)

// Definition describes how a content type maps onto storage: the table its
// documents live in, the vocabulary its toggle uses, the view qualification
// policy, and the denormalized counter column for each interaction kind.
// Table and column names come from this static registry only; they are never
// derived from request input.
type Definition struct {
	Type           Type
	Table          string
	Vocabulary     Vocabulary
	ViewPolicy     ViewPolicy
	LikeColumn     string
	ViewColumn     string
	ShareColumn    string
	CommentColumn  string
	BookmarkColumn string
}
