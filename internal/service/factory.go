package service

import (
	"time"

	"tekimax.app/docs/core/config"
	"tekimax.app/docs/internal/store"
)

type Services struct {
	stores    *store.Stores
	txRunner  TxRunner
	provider  IdentityProvider
	enqueuer  TaskEnqueuer
	storage   ObjectStorage
	inviteTTL time.Duration
}

// NewServices wires the services. storage may be nil when object storage is
// not configured.
func NewServices(stores *store.Stores, txRunner TxRunner, workOSCfg config.WorkOSConfig, enqueuer TaskEnqueuer, storage ObjectStorage, inviteCfg config.InviteConfig) *Services {
	return &Services{
		stores:    stores,
		txRunner:  txRunner,
		provider:  NewWorkOSProvider(workOSCfg),
		enqueuer:  enqueuer,
		storage:   storage,
		inviteTTL: inviteCfg.TTL,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.provider, s.stores, nil)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores, s.txRunner, s.storage)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores, s.txRunner, s.storage, nil)
}

func (s *Services) Invitations() InvitationService {
	return NewInvitationService(s.stores, s.txRunner, s.enqueuer, s.inviteTTL, nil)
}

func (s *Services) WorkspaceTypes() WorkspaceTypeService {
	return NewWorkspaceTypeService(s.stores, s.txRunner)
}
