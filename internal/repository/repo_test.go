package repository

import (
	"testing"

	"github.com/avevent/backend/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewContactRepository(pool))
	assert.NotNil(t, NewInquiryRepository(pool))
	assert.NotNil(t, NewBookingRepository(pool))
	assert.NotNil(t, NewTestimonialRepository(pool))
	assert.NotNil(t, NewPortfolioRepository(pool))
	assert.NotNil(t, NewStaffRepository(pool))
}

func TestInquiryWhere(t *testing.T) {
	where, args := inquiryWhere(domain.InquiryFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	status := domain.InquiryStatusPending
	where, args = inquiryWhere(domain.InquiryFilter{Status: &status})
	assert.Equal(t, "WHERE status=$1", where)
	assert.Equal(t, []any{status}, args)

	priority := domain.PriorityHigh
	where, args = inquiryWhere(domain.InquiryFilter{Status: &status, Priority: &priority})
	assert.Equal(t, "WHERE status=$1 AND priority=$2", where)
	assert.Equal(t, []any{status, priority}, args)
}

func TestInquiryOrder_RanksPriorities(t *testing.T) {
	// URGENT must sort ahead of HIGH; a plain ORDER BY priority DESC would
	// put them in alphabetical order instead.
	assert.Contains(t, inquiryOrder, "WHEN 'URGENT' THEN 4")
	assert.Contains(t, inquiryOrder, "WHEN 'LOW' THEN 1")
	assert.Contains(t, inquiryOrder, "created_at DESC")

	assert.Greater(t, domain.PriorityUrgent.Rank(), domain.PriorityHigh.Rank())
	assert.Greater(t, domain.PriorityHigh.Rank(), domain.PriorityMedium.Rank())
	assert.Greater(t, domain.PriorityMedium.Rank(), domain.PriorityLow.Rank())
	assert.Equal(t, 0, domain.InquiryPriority("UNKNOWN").Rank())
}

func TestBookingWhere(t *testing.T) {
	where, args := bookingWhere(domain.BookingFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	status := domain.BookingStatusConfirmed
	eventType := domain.EventTypeWedding
	clientID := "client-1"
	where, args = bookingWhere(domain.BookingFilter{Status: &status, EventType: &eventType, ClientID: &clientID})
	assert.Equal(t, "WHERE status=$1 AND event_type=$2 AND client_id=$3", where)
	assert.Len(t, args, 3)
}

func TestTestimonialWhere(t *testing.T) {
	where, args := testimonialWhere(domain.TestimonialFilter{IsPublic: true})
	assert.Equal(t, "WHERE is_public=$1", where)
	assert.Equal(t, []any{true}, args)

	featured := true
	eventType := domain.EventTypeWedding
	where, args = testimonialWhere(domain.TestimonialFilter{IsPublic: false, Featured: &featured, EventType: &eventType})
	assert.Equal(t, "WHERE is_public=$1 AND featured=$2 AND event_type=$3", where)
	assert.Equal(t, []any{false, featured, eventType}, args)
}

func TestQualifyTestimonialWhere(t *testing.T) {
	qualified := qualifyTestimonialWhere("WHERE is_public=$1 AND featured=$2 AND event_type=$3")
	assert.Equal(t, "WHERE t.is_public=$1 AND t.featured=$2 AND t.event_type=$3", qualified)
}

func TestPortfolioWhere(t *testing.T) {
	where, args := portfolioWhere(domain.PortfolioFilter{})
	assert.Empty(t, where)
	assert.Nil(t, args)

	public := true
	featured := false
	eventType := domain.EventTypeCorporate
	where, args = portfolioWhere(domain.PortfolioFilter{EventType: &eventType, Featured: &featured, IsPublic: &public})
	assert.Equal(t, "WHERE event_type=$1 AND featured=$2 AND is_public=$3", where)
	assert.Equal(t, []any{eventType, featured, public}, args)
}

func TestEncodeDecodeList(t *testing.T) {
	encoded, err := EncodeList([]string{"a.jpg", "b.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, `["a.jpg","b.jpg"]`, *encoded)

	decoded, err := DecodeList(encoded)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, decoded)

	encoded, err = EncodeList(nil)
	assert.NoError(t, err)
	assert.Nil(t, encoded)

	decoded, err = DecodeList(nil)
	assert.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)

	empty := ""
	decoded, err = DecodeList(&empty)
	assert.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
