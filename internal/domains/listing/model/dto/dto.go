package dto

import (
	"time"

	"hostdeck/internal/domains/listing/model"
	"hostdeck/shared"
	"hostdeck/shared/base64"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	gModel "hostdeck/shared/model"
	"hostdeck/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateListingRequest struct {
	Title        string             `json:"title"         validate:"required,max=200"`
	Location     string             `json:"location"      validate:"required,max=200"`
	Description  string             `json:"description"   validate:"omitempty,max=5000"`
	Thumbnail    string             `json:"thumbnail"     validate:"omitempty"`
	Photos       []string           `json:"photos"        validate:"omitempty,dive,required"`
	Amenities    []string           `json:"amenities"     validate:"omitempty,dive,required,max=100"`
	MaxGuests    int                `json:"max_guests"    validate:"gte=0"`
	Bedrooms     int                `json:"bedrooms"      validate:"gte=0"`
	Beds         int                `json:"beds"          validate:"gte=0"`
	AirbnbPrice  float64            `json:"airbnb_price"  validate:"gte=0"`
	BookingPrice float64            `json:"booking_price" validate:"gte=0"`
	VrboPrice    float64            `json:"vrbo_price"    validate:"gte=0"`
	Availability model.Availability `json:"availability"  validate:"omitempty,dive"`
}

// ToModel builds a pending listing from the accepted photo urls.
func (c *CreateListingRequest) ToModel(owner string, photos []string) model.Listing {
	now := timezone.Now()

	return model.Listing{
		ID:           uuid.NewString(),
		OwnerID:      owner,
		Title:        c.Title,
		Location:     c.Location,
		Description:  c.Description,
		Thumbnail:    Thumbnail(c.Thumbnail, photos),
		Photos:       pq.StringArray(photos),
		Amenities:    pq.StringArray(nonNil(c.Amenities)),
		MaxGuests:    c.MaxGuests,
		Bedrooms:     c.Bedrooms,
		Beds:         c.Beds,
		AirbnbPrice:  c.AirbnbPrice,
		BookingPrice: c.BookingPrice,
		VrboPrice:    c.VrboPrice,
		SyncStatus:   model.SyncStatusPending,
		Availability: c.Availability.Normalize(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  owner,
			ModifiedBy: owner,
		},
	}
}

type UpdateListingRequest struct {
	Title        *string             `db:"title"         json:"title"         validate:"omitempty,min=1,max=200"`
	Location     *string             `db:"location"      json:"location"      validate:"omitempty,min=1,max=200"`
	Description  *string             `db:"description"   json:"description"   validate:"omitempty,max=5000"`
	Thumbnail    *string             `json:"thumbnail"   validate:"omitempty"`
	Photos       *[]string           `json:"photos"      validate:"omitempty,dive,required"`
	Amenities    *pq.StringArray     `db:"amenities"     json:"amenities"     validate:"omitempty,dive,required,max=100"`
	MaxGuests    *int                `db:"max_guests"    json:"max_guests"    validate:"omitempty,gte=0"`
	Bedrooms     *int                `db:"bedrooms"      json:"bedrooms"      validate:"omitempty,gte=0"`
	Beds         *int                `db:"beds"          json:"beds"          validate:"omitempty,gte=0"`
	AirbnbPrice  *float64            `db:"airbnb_price"  json:"airbnb_price"  validate:"omitempty,gte=0"`
	BookingPrice *float64            `db:"booking_price" json:"booking_price" validate:"omitempty,gte=0"`
	VrboPrice    *float64            `db:"vrbo_price"    json:"vrbo_price"    validate:"omitempty,gte=0"`
	Availability *model.Availability `db:"availability"  json:"availability"  validate:"omitempty,dive"`
}

// Fields renders the update map. Photo columns are added only when photos were sent.
func (u *UpdateListingRequest) Fields(user string, photos []string) map[string]any {
	req := *u
	if req.Availability != nil {
		normalized := req.Availability.Normalize()
		req.Availability = &normalized
	}

	fields := shared.TransformFields(req, user)
	fields[model.FieldSyncStatus] = model.SyncStatusPending

	if u.Photos != nil {
		thumbnail := constant.Empty
		if u.Thumbnail != nil {
			thumbnail = *u.Thumbnail
		}

		fields[model.FieldPhotos] = pq.StringArray(photos)
		fields[model.FieldThumbnail] = Thumbnail(thumbnail, photos)
	} else if u.Thumbnail != nil {
		fields[model.FieldThumbnail] = *u.Thumbnail
	}

	return fields
}

// Thumbnail keeps an explicit remote thumbnail, otherwise the first photo.
func Thumbnail(requested string, photos []string) string {
	if requested != constant.Empty && !base64.IsDataURL(requested) {
		return requested
	}

	if len(photos) > 0 {
		return photos[0]
	}

	return constant.Empty
}

type PhotoRejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type WriteListingResponse struct {
	ID             string           `json:"id"`
	Photos         []string         `json:"photos"`
	RejectedPhotos []PhotoRejection `json:"rejected_photos"`
}

type ListingResponse struct {
	ID           string             `json:"id"`
	OwnerID      string             `json:"owner_id"`
	Title        string             `json:"title"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	Thumbnail    string             `json:"thumbnail"`
	Photos       []string           `json:"photos"`
	Amenities    []string           `json:"amenities"`
	MaxGuests    int                `json:"max_guests"`
	Bedrooms     int                `json:"bedrooms"`
	Beds         int                `json:"beds"`
	AirbnbPrice  float64            `json:"airbnb_price"`
	BookingPrice float64            `json:"booking_price"`
	VrboPrice    float64            `json:"vrbo_price"`
	Platforms    []model.Platform   `json:"platforms"`
	SyncStatus   model.SyncStatus   `json:"sync_status"`
	LastSync     *string            `json:"last_sync,omitempty"`
	Availability model.Availability `json:"availability"`
	gDto.Metadata
}

func (r *ListingResponse) FromModel(listing model.Listing) {
	r.ID = listing.ID
	r.OwnerID = listing.OwnerID
	r.Title = listing.Title
	r.Location = listing.Location
	r.Description = listing.Description
	r.Thumbnail = listing.Thumbnail
	r.Photos = nonNil(listing.Photos)
	r.Amenities = nonNil(listing.Amenities)
	r.MaxGuests = listing.MaxGuests
	r.Bedrooms = listing.Bedrooms
	r.Beds = listing.Beds
	r.AirbnbPrice = listing.AirbnbPrice
	r.BookingPrice = listing.BookingPrice
	r.VrboPrice = listing.VrboPrice
	r.Platforms = listing.ListedOn()
	r.SyncStatus = listing.SyncStatus
	r.Availability = listing.Availability

	if r.Availability == nil {
		r.Availability = model.Availability{}
	}

	if listing.LastSync != nil {
		lastSync := timezone.Format(*listing.LastSync, constant.DateFormat)
		r.LastSync = &lastSync
	}

	r.Metadata.FromModel(listing.Metadata)
}

type GetListingsResponse struct {
	Listings  []ListingResponse `json:"listings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetListingsResponse) FromModels(models []model.Listing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		r.Listings[i].FromModel(mod)
	}
}

type SyncListingRequest struct {
	Status   model.SyncStatus `db:"sync_status"`
	LastSync *time.Time       `db:"last_sync"`
}

type ActionResponse struct {
	ListingID string `json:"listing_id"`
	Action    string `json:"action"`
	Message   string `json:"message"`
}

func nonNil[S ~[]string](values S) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}
