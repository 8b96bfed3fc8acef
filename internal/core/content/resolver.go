package content

import "errors"

// ErrUnsupportedType indicates a content-type tag that has no registry entry.
// This is a configuration error, never silently defaulted.
var ErrUnsupportedType = errors.New("unsupported content type")

// definitions is the static dispatch table for all supported content types.
// Order matters only for tooling that iterates every type (reconciliation).
var definitions = []Definition{
	{
		Type:       TypeMedia,
		Table:      "media_items",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyAudiovisual,
		LikeColumn: "like_count",
	},
	{
		Type:       TypeDevotional,
		Table:      "devotionals",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyText,
		LikeColumn: "like_count",
	},
	{
		Type:       TypeArtist,
		Table:      "artists",
		Vocabulary: VocabularyFollow,
		ViewPolicy: ViewPolicyAudiovisual,
		LikeColumn: "follower_count",
	},
	{
		Type:       TypeMerch,
		Table:      "merch_items",
		Vocabulary: VocabularyFavorite,
		ViewPolicy: ViewPolicyText,
		LikeColumn: "favorite_count",
	},
	{
		Type:       TypeEbook,
		Table:      "ebooks",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyText,
		LikeColumn: "like_count",
	},
	{
		Type:       TypePodcast,
		Table:      "podcasts",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyAudiovisual,
		LikeColumn: "like_count",
	},
	{
		Type:       TypeForumPost,
		Table:      "forum_posts",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyText,
		LikeColumn: "like_count",
	},
	{
		Type:       TypePrayer,
		Table:      "prayer_requests",
		Vocabulary: VocabularyLike,
		ViewPolicy: ViewPolicyText,
		LikeColumn: "like_count",
	},
}

var byType = buildIndex()

func buildIndex() map[Type]Definition {
	idx := make(map[Type]Definition, len(definitions))
	for _, def := range definitions {
		// View/share/comment/bookmark columns are uniform across all tables;
		// only the like-kind column varies with vocabulary.
		def.ViewColumn = "view_count"
		def.ShareColumn = "share_count"
		def.CommentColumn = "comment_count"
		def.BookmarkColumn = "bookmark_count"
		idx[def.Type] = def
	}
	return idx
}

// Resolve maps a content-type tag to its storage definition.
// Unknown types return ErrUnsupportedType.
func Resolve(t Type) (Definition, error) {
	def, ok := byType[t]
	if !ok {
		return Definition{}, ErrUnsupportedType
	}
	return def, nil
}

// ResolveTag resolves a raw string tag, as received from a URL path segment.
func ResolveTag(tag string) (Definition, error) {
	return Resolve(Type(tag))
}

// All returns every registered definition in registry order.
// Used by offline tooling that walks all content tables.
func All() []Definition {
	out := make([]Definition, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, byType[def.Type])
	}
	return out
}
