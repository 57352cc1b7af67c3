package domain

import "github.com/google/uuid"

type SessionKey struct {
	User      UserID
	Container ContainerID
}

// ContainerSession links a user to one open managed container. It lives only while the container
// is open and is never persisted.
type ContainerSession struct {
	ID        uuid.UUID
	User      UserID
	Container *Container
	Key       GuiKey
}

func (s ContainerSession) SessionKey() SessionKey {
	var id ContainerID
	if s.Container != nil {
		id = s.Container.ID
	}
	return SessionKey{User: s.User, Container: id}
}
