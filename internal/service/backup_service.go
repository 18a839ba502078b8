package service

import (
	"context"
	"encoding/json"
	"errors"

	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"

	"github.com/rs/zerolog"
)

// backupService implements ports.BackupService over a set of named content
// storage backends.
type backupService struct {
	store    ports.SimulationStore
	backends map[string]ports.ContentStorage
	log      zerolog.Logger
}

func NewBackupService(
	store ports.SimulationStore,
	backends map[string]ports.ContentStorage,
	log zerolog.Logger,
) ports.BackupService {
	return &backupService{
		store:    store,
		backends: backends,
		log:      log,
	}
}

// Backup serializes the property, uploads the snapshot through the named
// backend and links the returned content id to the listing.
func (s *backupService) Backup(ctx context.Context, propertyID, backend string) (*ports.BackupResult, error) {
	adapter, ok := s.backends[backend]
	if !ok {
		return nil, apperror.ErrUnknownBackend(backend)
	}

	property, ok := s.store.PropertyByID(ctx, propertyID)
	if !ok {
		return nil, apperror.ErrNotFound("property")
	}

	snapshot, err := json.MarshalIndent(property, "", "  ")
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	cid, err := adapter.Upload(ctx, snapshot)
	if err != nil {
		if errors.Is(err, ports.ErrNoSigner) {
			return nil, apperror.ErrNoWallet()
		}
		return nil, apperror.ErrUploadFailed(err)
	}

	patch := domain.PropertyPatch{}
	switch backend {
	case ports.BackendPieces:
		patch.PieceCid = &cid
	case ports.BackendPinning:
		patch.IpfsCid = &cid
	}
	if _, ok := s.store.UpdateProperty(ctx, propertyID, patch); !ok {
		// Listing vanished between the read and the link. The snapshot is
		// already uploaded, so report the content id anyway.
		s.log.Warn().
			Str("property_id", propertyID).
			Str("cid", cid).
			Msg("property removed during backup, content id not linked")
	}

	s.log.Info().
		Str("property_id", propertyID).
		Str("backend", backend).
		Str("cid", cid).
		Msg("property backed up")

	return &ports.BackupResult{
		PropertyID: propertyID,
		Backend:    backend,
		ContentID:  cid,
	}, nil
}

// Restore downloads and decodes a property snapshot by content id. The
// decoded listing is returned as-is, it is not written back to the store.
func (s *backupService) Restore(ctx context.Context, backend, contentID string) (domain.Property, error) {
	adapter, ok := s.backends[backend]
	if !ok {
		return domain.Property{}, apperror.ErrUnknownBackend(backend)
	}

	data, err := adapter.Download(ctx, contentID)
	if err != nil {
		return domain.Property{}, apperror.ErrDownloadFailed(err)
	}

	var property domain.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return domain.Property{}, apperror.ErrBadSnapshot(err)
	}
	if property.ID == "" {
		return domain.Property{}, apperror.ErrBadSnapshot(errors.New("snapshot has no listing id"))
	}

	return property, nil
}
