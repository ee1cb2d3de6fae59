package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/microservices-manager/admin-console/internal/domain"
	"github.com/microservices-manager/admin-console/internal/ports"
)

func newUserFixture(t *testing.T) (*UserForm, *UserCollection, *ports.MockUserClientPort) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockClient := ports.NewMockUserClientPort(ctrl)
	collection := NewUserCollection(mockClient, &stubConfirmer{}, zap.NewNop())
	return NewUserForm(collection), collection, mockClient
}

func TestUserForm_OpenForCreateDefaults(t *testing.T) {
	form, _, _ := newUserFixture(t)

	form.OpenForCreate()

	assert.Equal(t, ModeCreate, form.Mode())
	assert.Equal(t, UserDraft{}, form.Draft())
}

func TestUserForm_OpenForEditProjectsRecord(t *testing.T) {
	form, _, _ := newUserFixture(t)

	form.OpenForEdit(domain.User{ID: 3, Name: "Ann", Email: "ann@example.com"})

	assert.Equal(t, ModeEdit, form.Mode())
	assert.Equal(t, int64(3), form.TargetID())
	// absent optional phone becomes the empty string
	assert.Equal(t, UserDraft{Name: "Ann", Email: "ann@example.com", Phone: ""}, form.Draft())
}

func TestUserForm_OpeningDiscardsPriorDraft(t *testing.T) {
	form, _, _ := newUserFixture(t)

	form.OpenForCreate()
	require.NoError(t, form.SetField("name", "half-typed"))
	form.OpenForEdit(domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"})

	assert.Equal(t, "Ann", form.Draft().Name)
}

func TestUserForm_IdentityRoundTrip(t *testing.T) {
	form, _, mockClient := newUserFixture(t)

	record := domain.User{ID: 4, Name: "Ann", Email: "ann@example.com", Phone: "555-0101"}
	form.OpenForEdit(record)

	// the update payload equals the record, minus the id
	want := domain.UserPayload{Name: "Ann", Email: "ann@example.com", Phone: "555-0101"}
	mockClient.EXPECT().Update(gomock.Any(), int64(4), want).Return(&record, nil)
	mockClient.EXPECT().List(gomock.Any()).Return([]domain.User{record}, nil)

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, ModeNone, form.Mode())
}

func TestUserForm_SubmitCreate(t *testing.T) {
	form, collection, mockClient := newUserFixture(t)

	form.OpenForCreate()
	require.NoError(t, form.SetField("name", "Ann"))
	require.NoError(t, form.SetField("email", "ann@example.com"))

	created := domain.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
	mockClient.EXPECT().Create(gomock.Any(), domain.UserPayload{Name: "Ann", Email: "ann@example.com"}).Return(&created, nil)
	mockClient.EXPECT().List(gomock.Any()).Return([]domain.User{created}, nil)

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, ModeNone, form.Mode())
	assert.Equal(t, UserDraft{}, form.Draft())
	assert.Empty(t, collection.LastError())
}

func TestUserForm_ValidationStopsSubmission(t *testing.T) {
	tests := []struct {
		name    string
		draft   UserDraft
		wantErr string
	}{
		{"empty name", UserDraft{Email: "ann@example.com"}, "name is required"},
		{"empty email", UserDraft{Name: "Ann"}, "email is required"},
		{"email without at sign", UserDraft{Name: "Ann", Email: "annexample.com"}, "email must contain '@'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, _, _ := newUserFixture(t)
			form.OpenForCreate()
			require.NoError(t, form.SetField("name", tt.draft.Name))
			require.NoError(t, form.SetField("email", tt.draft.Email))

			err := form.Submit(context.Background())
			require.EqualError(t, err, tt.wantErr)
			// no client expectation was set: the request never left the form
			assert.Equal(t, ModeCreate, form.Mode())
			assert.Equal(t, tt.draft, form.Draft())
		})
	}
}

func TestUserForm_FailedSubmitKeepsSessionOpen(t *testing.T) {
	form, collection, mockClient := newUserFixture(t)

	form.OpenForCreate()
	require.NoError(t, form.SetField("name", "Ann"))
	require.NoError(t, form.SetField("email", "ann@example.com"))

	mockClient.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, &ports.APIError{StatusCode: 409, Message: "email already exists"})

	err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, ModeCreate, form.Mode())
	assert.Equal(t, "Ann", form.Draft().Name)
	assert.Equal(t, "email already exists", collection.LastError())
}

func TestUserForm_CancelDiscardsUnconditionally(t *testing.T) {
	form, collection, _ := newUserFixture(t)

	form.OpenForCreate()
	require.NoError(t, form.SetField("name", "half"))
	require.NoError(t, form.SetField("email", "typed"))
	form.Cancel()

	assert.Equal(t, ModeNone, form.Mode())
	assert.Equal(t, UserDraft{}, form.Draft())
	// the collection saw no traffic
	assert.Empty(t, collection.Items())
}

func TestUserForm_SetFieldUnknown(t *testing.T) {
	form, _, _ := newUserFixture(t)
	form.OpenForCreate()

	assert.Error(t, form.SetField("nickname", "x"))
}

func TestUserForm_SubmitWithoutSession(t *testing.T) {
	form, _, _ := newUserFixture(t)

	assert.EqualError(t, form.Submit(context.Background()), "no edit session open")
}

// A mutation can succeed while the forced follow-up refresh fails. The
// session still closes, but the refresh failure stays surfaced instead of
// being wiped alongside it.
func TestUserForm_SubmitSuccessWithFailedRefresh(t *testing.T) {
	form, collection, mockClient := newUserFixture(t)
	collection.items = []domain.User{{ID: 1, Name: "Old"}}

	form.OpenForCreate()
	require.NoError(t, form.SetField("name", "Ann"))
	require.NoError(t, form.SetField("email", "ann@example.com"))

	created := domain.User{ID: 2, Name: "Ann", Email: "ann@example.com"}
	mockClient.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&created, nil)
	mockClient.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, ModeNone, form.Mode())
	assert.Equal(t, "Failed to fetch users", collection.LastError())
	// the stale snapshot is all there is to show, so the message must stay
	assert.Equal(t, []domain.User{{ID: 1, Name: "Old"}}, collection.Items())
}
