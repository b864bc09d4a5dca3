package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mintmarket/marketplace/internal/domain"
	"github.com/mintmarket/marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Principal{},
		&schema.Asset{},
		&schema.Listing{},
		&schema.ChainEventJournal{},
		&schema.MintRequest{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	return nil
}

// ---------------------------------------------------------------------------
// Principals

func (s *pgStore) GetPrincipalByID(ctx context.Context, id int64) (*schema.Principal, error) {
	var principal schema.Principal
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&principal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}
	return &principal, nil
}

func (s *pgStore) GetPrincipalByAddress(ctx context.Context, address string) (*schema.Principal, error) {
	var principal schema.Principal
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", domain.NormalizeAddress(address)).
		First(&principal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}
	return &principal, nil
}

func (s *pgStore) GetOrCreatePrincipal(ctx context.Context, address string) (*schema.Principal, error) {
	normalized := domain.NormalizeAddress(address)

	principal := schema.Principal{WalletAddress: normalized}
	// ON CONFLICT DO NOTHING keeps concurrent first-contact requests safe
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoNothing: true,
	}).Create(&principal)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create principal: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return &principal, nil
	}

	return s.GetPrincipalByAddress(ctx, normalized)
}

func (s *pgStore) RotateNonce(ctx context.Context, address string, nonce string) (*schema.Principal, error) {
	normalized := domain.NormalizeAddress(address)

	var principal *schema.Principal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p schema.Principal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wallet_address = ?", normalized).
			First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = schema.Principal{WalletAddress: normalized, Nonce: &nonce}
			result := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "wallet_address"}},
				DoNothing: true,
			}).Create(&p)
			if result.Error != nil {
				return fmt.Errorf("failed to create principal: %w", result.Error)
			}
			if result.RowsAffected > 0 {
				principal = &p
				return nil
			}
			// Lost the first-contact race; lock the winner's row and rotate
			p = schema.Principal{}
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("wallet_address = ?", normalized).
				First(&p).Error; err != nil {
				return fmt.Errorf("failed to lock principal: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to lock principal: %w", err)
		}

		if err := tx.Model(&p).Update("nonce", nonce).Error; err != nil {
			return fmt.Errorf("failed to rotate nonce: %w", err)
		}
		p.Nonce = &nonce
		principal = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return principal, nil
}

func (s *pgStore) ConsumeNonce(ctx context.Context, address string, nonce string, replacement string, loginAt time.Time) (*schema.Principal, error) {
	normalized := domain.NormalizeAddress(address)

	var principal *schema.Principal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p schema.Principal
		// SELECT ... FOR UPDATE serializes concurrent logins for the same
		// address: only one caller can observe the matching nonce
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wallet_address = ?", normalized).
			First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPrincipalNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock principal: %w", err)
		}

		if p.Nonce == nil || *p.Nonce != nonce {
			return domain.ErrNoPendingChallenge
		}

		updates := map[string]interface{}{
			"nonce":         replacement,
			"last_login_at": loginAt,
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to consume nonce: %w", err)
		}
		p.Nonce = &replacement
		p.LastLoginAt = &loginAt
		principal = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return principal, nil
}

func (s *pgStore) UpdatePrincipalProfile(ctx context.Context, id int64, update ProfileUpdate) (*schema.Principal, error) {
	var principal *schema.Principal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p schema.Principal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPrincipalNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock principal: %w", err)
		}

		updates := map[string]interface{}{}
		if update.Username != nil {
			var count int64
			if err := tx.Model(&schema.Principal{}).
				Where("username = ? AND id <> ?", *update.Username, id).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if count > 0 {
				return domain.ErrUsernameTaken
			}
			updates["username"] = *update.Username
			p.Username = update.Username
		}
		if update.Bio != nil {
			updates["bio"] = *update.Bio
			p.Bio = update.Bio
		}
		if update.AvatarURL != nil {
			updates["avatar_url"] = *update.AvatarURL
			p.AvatarURL = update.AvatarURL
		}
		if len(updates) == 0 {
			principal = &p
			return nil
		}

		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		principal = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return principal, nil
}

// ---------------------------------------------------------------------------
// Assets

func (s *pgStore) CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	asset := schema.Asset{
		ContractAddress: domain.NormalizeAddress(input.ContractAddress),
		TokenNumber:     input.TokenNumber,
		Standard:        input.Standard,
		Amount:          input.Amount,
		Name:            input.Name,
		Description:     input.Description,
		ImageURL:        input.ImageURL,
		MetadataURI:     input.MetadataURI,
		OwnerID:         input.OwnerID,
		CreatorID:       input.CreatorID,
		RoyaltyBps:      input.RoyaltyBps,
		MintTxHash:      input.MintTxHash,
		BlockNumber:     input.BlockNumber,
	}
	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return &asset, nil
}

func (s *pgStore) GetAssetByID(ctx context.Context, id int64) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (s *pgStore) GetAssetByToken(ctx context.Context, contractAddress string, tokenNumber string) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).
		Where("contract_address = ? AND token_number = ?", domain.NormalizeAddress(contractAddress), tokenNumber).
		First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (s *pgStore) ListAssets(ctx context.Context, filter AssetFilter) ([]schema.Asset, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Asset{})

	if !filter.IncludeBurned {
		query = query.Where("burned = false")
	}
	if filter.OwnerAddress != nil {
		query = query.Where("owner_id IN (?)",
			s.db.Model(&schema.Principal{}).Select("id").
				Where("wallet_address = ?", domain.NormalizeAddress(*filter.OwnerAddress)))
	}
	if filter.CreatorAddress != nil {
		query = query.Where("creator_id IN (?)",
			s.db.Model(&schema.Principal{}).Select("id").
				Where("wallet_address = ?", domain.NormalizeAddress(*filter.CreatorAddress)))
	}
	if filter.Standard != nil {
		query = query.Where("standard = ?", *filter.Standard)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count assets: %w", err)
	}

	var assets []schema.Asset
	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&assets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, total, nil
}

// ---------------------------------------------------------------------------
// Listings

func (s *pgStore) CreateActiveListing(ctx context.Context, input CreateListingInput) (*schema.Listing, error) {
	var listing *schema.Listing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the asset row so concurrent listing attempts for the same
		// asset serialize here
		var asset schema.Asset
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.AssetID).
			First(&asset).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAssetNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock asset: %w", err)
		}

		var count int64
		if err := tx.Model(&schema.Listing{}).
			Where("asset_id = ? AND status = ?", input.AssetID, domain.ListingStatusActive).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check active listings: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadyListed
		}

		l := schema.Listing{
			AssetID:  input.AssetID,
			SellerID: input.SellerID,
			PriceWei: input.PriceWei,
			PriceUSD: input.PriceUSD,
			Amount:   input.Amount,
			Status:   domain.ListingStatusActive,
		}
		if err := tx.Create(&l).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}
		listing = &l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *pgStore) GetListingByID(ctx context.Context, id int64) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

func (s *pgStore) GetListingByChainID(ctx context.Context, chainListingID uint64) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).
		Where("chain_listing_id = ?", chainListingID).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

func (s *pgStore) GetActiveListingByAsset(ctx context.Context, assetID int64) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).
		Where("asset_id = ? AND status = ?", assetID, domain.ListingStatusActive).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active listing: %w", err)
	}
	return &listing, nil
}

func (s *pgStore) ListListings(ctx context.Context, filter ListingFilter) ([]schema.Listing, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Listing{})

	if filter.Status != nil {
		query = query.Where("listings.status = ?", *filter.Status)
	}
	if filter.SellerAddress != nil {
		query = query.Where("seller_id IN (?)",
			s.db.Model(&schema.Principal{}).Select("id").
				Where("wallet_address = ?", domain.NormalizeAddress(*filter.SellerAddress)))
	}
	if filter.Standard != nil {
		query = query.Joins("JOIN assets ON assets.id = listings.asset_id").
			Where("assets.standard = ?", *filter.Standard)
	}
	if filter.MinPriceWei != nil {
		query = query.Where("price_wei >= ?::numeric", *filter.MinPriceWei)
	}
	if filter.MaxPriceWei != nil {
		query = query.Where("price_wei <= ?::numeric", *filter.MaxPriceWei)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var listings []schema.Listing
	err := query.Order("listings.created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&listings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, total, nil
}

func (s *pgStore) MarkListingCancelled(ctx context.Context, listingID int64, sellerID int64, at time.Time) (*schema.Listing, error) {
	var listing *schema.Listing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, listingID)
		if err != nil {
			return err
		}

		if l.SellerID != sellerID {
			return domain.ErrNotOwner
		}
		if l.Status != domain.ListingStatusActive {
			return domain.ErrNotCancelable
		}

		updates := map[string]interface{}{
			"status":       domain.ListingStatusCancelled,
			"cancelled_at": at,
		}
		if err := tx.Model(l).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to cancel listing: %w", err)
		}
		l.Status = domain.ListingStatusCancelled
		l.CancelledAt = &at
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *pgStore) BindChainListing(ctx context.Context, input BindChainListingInput) (*schema.Listing, error) {
	txHash := domain.NormalizeTxHash(input.TxHash)

	var listing *schema.Listing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, input.ListingID)
		if err != nil {
			return err
		}

		// Duplicate delivery of the same confirmation is a no-op
		applied, err := journalApplied(tx, domain.MarketEventListingCreated, txHash, l.ID)
		if err != nil {
			return err
		}
		if applied {
			listing = l
			return nil
		}

		if l.ChainListingID != nil {
			if *l.ChainListingID == input.ChainListingID {
				listing = l
				return nil
			}
			return domain.ErrAlreadyBound
		}
		if l.Status != domain.ListingStatusActive {
			return domain.ErrNotActive
		}

		if err := appendJournal(tx, schema.ChainEventJournal{
			EventID:     input.EventID,
			EventType:   domain.MarketEventListingCreated,
			TxHash:      txHash,
			ListingID:   l.ID,
			BlockNumber: input.BlockNumber,
			Raw:         input.Raw,
		}); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"chain_listing_id": input.ChainListingID,
			"list_tx_hash":     txHash,
		}
		if err := tx.Model(l).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to bind chain listing: %w", err)
		}
		l.ChainListingID = &input.ChainListingID
		l.ListTxHash = &txHash
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *pgStore) CompleteSale(ctx context.Context, input CompleteSaleInput) (*schema.Listing, error) {
	txHash := domain.NormalizeTxHash(input.TxHash)
	buyerAddress := domain.NormalizeAddress(input.BuyerAddress)

	var listing *schema.Listing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, input.ListingID)
		if err != nil {
			return err
		}

		applied, err := journalApplied(tx, domain.MarketEventListingSold, txHash, l.ID)
		if err != nil {
			return err
		}
		if applied {
			listing = l
			return nil
		}
		if l.Status == domain.ListingStatusSold && l.SaleTxHash != nil && *l.SaleTxHash == txHash {
			listing = l
			return nil
		}
		if l.Status != domain.ListingStatusActive {
			return domain.ErrNotActive
		}

		// Lock the asset too - sale state and ownership transfer commit or
		// roll back together
		var asset schema.Asset
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", l.AssetID).
			First(&asset).Error
		if err != nil {
			return fmt.Errorf("failed to lock asset: %w", err)
		}

		buyer := schema.Principal{WalletAddress: buyerAddress}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet_address"}},
			DoNothing: true,
		}).Create(&buyer)
		if result.Error != nil {
			return fmt.Errorf("failed to create buyer principal: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			if err := tx.Where("wallet_address = ?", buyerAddress).First(&buyer).Error; err != nil {
				return fmt.Errorf("failed to get buyer principal: %w", err)
			}
		}

		if err := appendJournal(tx, schema.ChainEventJournal{
			EventID:     input.EventID,
			EventType:   domain.MarketEventListingSold,
			TxHash:      txHash,
			ListingID:   l.ID,
			BlockNumber: input.BlockNumber,
			Raw:         input.Raw,
		}); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":              domain.ListingStatusSold,
			"buyer_id":            buyer.ID,
			"sale_tx_hash":        txHash,
			"sold_at":             input.SoldAt,
			"platform_fee_wei":    input.PlatformFeeWei,
			"royalty_fee_wei":     input.RoyaltyFeeWei,
			"seller_proceeds_wei": input.SellerProceedsWei,
		}
		if err := tx.Model(l).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark listing sold: %w", err)
		}

		if err := tx.Model(&asset).Update("owner_id", buyer.ID).Error; err != nil {
			return fmt.Errorf("failed to transfer asset ownership: %w", err)
		}

		soldAt := input.SoldAt
		l.Status = domain.ListingStatusSold
		l.BuyerID = &buyer.ID
		l.SaleTxHash = &txHash
		l.SoldAt = &soldAt
		l.PlatformFeeWei = &input.PlatformFeeWei
		l.RoyaltyFeeWei = &input.RoyaltyFeeWei
		l.SellerProceedsWei = &input.SellerProceedsWei
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *pgStore) ConfirmCancellation(ctx context.Context, input ConfirmCancellationInput) (*schema.Listing, error) {
	txHash := domain.NormalizeTxHash(input.TxHash)

	var listing *schema.Listing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, input.ListingID)
		if err != nil {
			return err
		}

		applied, err := journalApplied(tx, domain.MarketEventListingCancelled, txHash, l.ID)
		if err != nil {
			return err
		}
		if applied {
			listing = l
			return nil
		}
		if l.Status == domain.ListingStatusSold {
			return domain.ErrNotActive
		}

		if err := appendJournal(tx, schema.ChainEventJournal{
			EventID:     input.EventID,
			EventType:   domain.MarketEventListingCancelled,
			TxHash:      txHash,
			ListingID:   l.ID,
			BlockNumber: input.BlockNumber,
			Raw:         input.Raw,
		}); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"cancel_tx_hash": txHash,
		}
		if l.Status == domain.ListingStatusActive {
			updates["status"] = domain.ListingStatusCancelled
			updates["cancelled_at"] = input.CancelledAt
		}
		if err := tx.Model(l).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to confirm cancellation: %w", err)
		}

		cancelledAt := input.CancelledAt
		if l.Status == domain.ListingStatusActive {
			l.Status = domain.ListingStatusCancelled
			l.CancelledAt = &cancelledAt
		}
		l.CancelTxHash = &txHash
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// lockListing loads a listing row with SELECT ... FOR UPDATE
func lockListing(tx *gorm.DB, listingID int64) (*schema.Listing, error) {
	var l schema.Listing
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", listingID).
		First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock listing: %w", err)
	}
	return &l, nil
}

// journalApplied reports whether a confirmation with this
// (type, tx hash, listing) was already applied. One transaction can confirm
// several listings, so the tx hash alone is not the dedup key.
func journalApplied(tx *gorm.DB, eventType domain.MarketEventType, txHash string, listingID int64) (bool, error) {
	var count int64
	err := tx.Model(&schema.ChainEventJournal{}).
		Where("event_type = ? AND tx_hash = ? AND listing_id = ?", eventType, txHash, listingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check event journal: %w", err)
	}
	return count > 0, nil
}

// appendJournal records an applied confirmation inside the caller's transaction
func appendJournal(tx *gorm.DB, entry schema.ChainEventJournal) error {
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_type"}, {Name: "tx_hash"}, {Name: "listing_id"}},
		DoNothing: true,
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("failed to append event journal: %w", result.Error)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mint requests

func (s *pgStore) CreateMintRequest(ctx context.Context, input CreateMintRequestInput) (*schema.MintRequest, error) {
	request := schema.MintRequest{
		ArtistID:            input.ArtistID,
		Title:               input.Title,
		Description:         input.Description,
		ArtworkURL:          input.ArtworkURL,
		Standard:            input.Standard,
		EditionSize:         input.EditionSize,
		RoyaltyBps:          input.RoyaltyBps,
		MetadataName:        input.MetadataName,
		MetadataDescription: input.MetadataDescription,
		MetadataAttributes:  input.MetadataAttributes,
		Status:              schema.MintRequestStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create mint request: %w", err)
	}
	return &request, nil
}

func (s *pgStore) GetMintRequestByID(ctx context.Context, id int64) (*schema.MintRequest, error) {
	var request schema.MintRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mint request: %w", err)
	}
	return &request, nil
}

func (s *pgStore) ListMintRequests(ctx context.Context, filter MintRequestFilter) ([]schema.MintRequest, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.MintRequest{})

	if filter.ArtistID != nil {
		query = query.Where("artist_id = ?", *filter.ArtistID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mint requests: %w", err)
	}

	var requests []schema.MintRequest
	err := query.Order("created_at DESC").
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mint requests: %w", err)
	}
	return requests, total, nil
}

func (s *pgStore) ReviewMintRequest(ctx context.Context, id int64, reviewerID int64, approved bool, note *string, metadataURI *string, at time.Time) (*schema.MintRequest, error) {
	var request *schema.MintRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r schema.MintRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&r).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMintRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock mint request: %w", err)
		}

		if r.Status != schema.MintRequestStatusPending {
			return domain.ErrMintRequestNotReviewable
		}

		status := schema.MintRequestStatusRejected
		if approved {
			status = schema.MintRequestStatusApproved
		}
		updates := map[string]interface{}{
			"status":         status,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    at,
		}
		if note != nil {
			updates["review_note"] = *note
		}
		if metadataURI != nil {
			updates["metadata_uri"] = *metadataURI
		}
		if err := tx.Model(&r).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to review mint request: %w", err)
		}
		r.Status = status
		r.ReviewedByID = &reviewerID
		r.ReviewedAt = &at
		r.ReviewNote = note
		if metadataURI != nil {
			r.MetadataURI = metadataURI
		}
		request = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *pgStore) MarkMintRequestMinted(ctx context.Context, id int64, txHash string, assetInput CreateAssetInput) (*schema.MintRequest, *schema.Asset, error) {
	normalizedTx := domain.NormalizeTxHash(txHash)

	var request *schema.MintRequest
	var asset *schema.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r schema.MintRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&r).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMintRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock mint request: %w", err)
		}

		// Duplicate confirmation of the same mint tx is a no-op
		if r.Status == schema.MintRequestStatusMinted {
			if r.MintTxHash != nil && *r.MintTxHash == normalizedTx && r.AssetID != nil {
				request = &r
				var a schema.Asset
				if err := tx.Where("id = ?", *r.AssetID).First(&a).Error; err != nil {
					return fmt.Errorf("failed to get minted asset: %w", err)
				}
				asset = &a
				return nil
			}
			return domain.ErrMintRequestNotApproved
		}
		if r.Status != schema.MintRequestStatusApproved {
			return domain.ErrMintRequestNotApproved
		}

		a := schema.Asset{
			ContractAddress: domain.NormalizeAddress(assetInput.ContractAddress),
			TokenNumber:     assetInput.TokenNumber,
			Standard:        assetInput.Standard,
			Amount:          assetInput.Amount,
			Name:            assetInput.Name,
			Description:     assetInput.Description,
			ImageURL:        assetInput.ImageURL,
			MetadataURI:     assetInput.MetadataURI,
			OwnerID:         assetInput.OwnerID,
			CreatorID:       assetInput.CreatorID,
			RoyaltyBps:      assetInput.RoyaltyBps,
			MintTxHash:      &normalizedTx,
			BlockNumber:     assetInput.BlockNumber,
		}
		if err := tx.Create(&a).Error; err != nil {
			return fmt.Errorf("failed to create minted asset: %w", err)
		}

		updates := map[string]interface{}{
			"status":       schema.MintRequestStatusMinted,
			"mint_tx_hash": normalizedTx,
			"asset_id":     a.ID,
		}
		if err := tx.Model(&r).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark mint request minted: %w", err)
		}
		r.Status = schema.MintRequestStatusMinted
		r.MintTxHash = &normalizedTx
		r.AssetID = &a.ID
		request = &r
		asset = &a
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return request, asset, nil
}

// ---------------------------------------------------------------------------
// Block cursors

func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}
	return blockNumber, nil
}

func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   fmt.Sprintf("block_cursor:%s", chain),
		Value: strconv.FormatUint(blockNumber, 10),
	}
	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}
	return nil
}
