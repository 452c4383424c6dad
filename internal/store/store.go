package store

import (
	"context"

	"cloud.google.com/go/firestore"
)

const (
	usersCollection    = "Users"
	songsCollection    = "Songs"
	albumsCollection   = "Albums"
	artistsCollection  = "Artists"
	reviewsCollection  = "Reviews"
	commentsCollection = "Comments"
)

// Store is the document-store layer. All cross-document mutations
// (follow/unfollow, review creation, reactions) run inside Firestore
// transactions so both writes commit or neither does.
type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) users() *firestore.CollectionRef {
	return s.client.Collection(usersCollection)
}

func (s *Store) reviews() *firestore.CollectionRef {
	return s.client.Collection(reviewsCollection)
}

func (s *Store) comments() *firestore.CollectionRef {
	return s.client.Collection(commentsCollection)
}

// targetCollection maps a review target type onto its collection name.
func targetCollection(targetType TargetType) (string, error) {
	switch targetType {
	case TargetSong:
		return songsCollection, nil
	case TargetAlbum:
		return albumsCollection, nil
	default:
		return "", invalidArgf("unknown target type %q", targetType)
	}
}

// getDoc fetches a document by id and decodes it into out.
func (s *Store) getDoc(ctx context.Context, collection, id string, out any) error {
	if id == "" {
		return invalidArgf("missing %s id", collection)
	}
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return wrapStoreErr("get "+collection, err)
	}
	if err := doc.DataTo(out); err != nil {
		return wrapStoreErr("decode "+collection, err)
	}
	return nil
}
