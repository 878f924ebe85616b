package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaanicall/vaani-backend/internal/domain/entity"
	"github.com/vaanicall/vaani-backend/internal/domain/repository"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/memstore"
	"github.com/vaanicall/vaani-backend/internal/navigation"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakePublisher records review submissions instead of talking to a broker.
type fakePublisher struct {
	published []ReviewSubmission
	err       error
}

func (f *fakePublisher) PublishJSON(ctx context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	if sub, ok := body.(ReviewSubmission); ok {
		f.published = append(f.published, sub)
	}
	return nil
}

type onboardingFixture struct {
	svc   *OnboardingService
	store *memstore.ProfileStore
	nav   *navigation.Manager
	pub   *fakePublisher
}

func newOnboardingFixture() *onboardingFixture {
	store := memstore.NewProfileStore()
	nav := navigation.NewManager()
	pub := &fakePublisher{}
	return &onboardingFixture{
		svc:   NewOnboardingService(store, nav, pub, testLogger()),
		store: store,
		nav:   nav,
		pub:   pub,
	}
}

func TestSelectRoleRequiresAChoice(t *testing.T) {
	f := newOnboardingFixture()

	_, err := f.svc.SelectRole(context.Background(), "dev", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.SelectRole(context.Background(), "dev", "   ")
	assert.ErrorIs(t, err, ErrValidation)

	// Nothing written, nothing navigated.
	assert.Equal(t, 0, f.store.Len("dev"))
	assert.Equal(t, entity.ScreenLogin, f.nav.Stack("dev").Current().Screen)
}

func TestSelectRoleUnknownRoleFailsLoudly(t *testing.T) {
	f := newOnboardingFixture()

	_, err := f.svc.SelectRole(context.Background(), "dev", "other")
	assert.ErrorIs(t, err, entity.ErrUnknownRole)
	assert.Equal(t, 0, f.store.Len("dev"))
}

func TestSelectRoleBranches(t *testing.T) {
	ctx := context.Background()

	f := newOnboardingFixture()
	next, err := f.svc.SelectRole(ctx, "caller", "male")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenMaleUsername, next)
	assert.Equal(t, entity.ScreenMaleUsername, f.nav.Stack("caller").Current().Screen)

	next, err = f.svc.SelectRole(ctx, "listener", "female")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleNameSetup, next)

	v, found, err := f.store.Get(ctx, "listener", repository.KeyGender)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "female", v)
}

func TestCallerFlow(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()

	_, err := f.svc.SelectRole(ctx, "dev", "male")
	require.NoError(t, err)

	next, err := f.svc.SubmitUsername(ctx, "dev", "  Rahul_99  ")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenMaleHome, next)

	raw, found, err := f.store.Get(ctx, "dev", repository.KeyMaleProfile)
	require.NoError(t, err)
	require.True(t, found)
	var mp entity.MaleProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &mp))
	assert.Equal(t, "Rahul_99", mp.Username)
	assert.Equal(t, entity.RoleMale, mp.Gender)

	// Caller home is pushed, so back still works.
	stack := f.nav.Stack("dev")
	assert.Equal(t, entity.ScreenMaleHome, stack.Current().Screen)
	assert.Equal(t, 3, stack.Depth())
}

func TestSubmitUsernameValidation(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "male")
	require.NoError(t, err)

	before := f.store.Len("dev")
	_, err = f.svc.SubmitUsername(ctx, "dev", "ab")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.SubmitUsername(ctx, "dev", "   ab   ")
	assert.ErrorIs(t, err, ErrValidation)

	// A rejected submission writes nothing and stays put.
	assert.Equal(t, before, f.store.Len("dev"))
	assert.Equal(t, entity.ScreenMaleUsername, f.nav.Stack("dev").Current().Screen)
}

func TestSubmitUsernameWithoutRole(t *testing.T) {
	f := newOnboardingFixture()

	_, err := f.svc.SubmitUsername(context.Background(), "dev", "Rahul")
	assert.ErrorIs(t, err, ErrStepPrecondition)
}

func TestSubmitUsernameWrongRole(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)

	_, err = f.svc.SubmitUsername(ctx, "dev", "Rahul")
	assert.ErrorIs(t, err, ErrStepPrecondition)
}

func TestListenerFlow(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()

	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)

	next, err := f.svc.SubmitName(ctx, "dev", "  Priya  ")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleAvatarSetup, next)

	next, err = f.svc.SubmitAvatar(ctx, "dev", "")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleLanguageSetup, next)

	next, err = f.svc.SubmitLanguage(ctx, "dev", "hi")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenAudioVerification, next)

	next, err = f.svc.CompleteVoiceVerification(ctx, "dev", true)
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleHome, next)

	// All four listener keys present, trimmed and defaulted.
	want := map[string]string{
		repository.KeyGender:        "female",
		repository.KeyName:          "Priya",
		repository.KeyAvatar:        entity.DefaultAvatar(),
		repository.KeyLanguage:      "hi",
		repository.KeyVoiceVerified: "true",
	}
	for key, val := range want {
		v, found, err := f.store.Get(ctx, "dev", key)
		require.NoError(t, err)
		require.True(t, found, key)
		assert.Equal(t, val, v, key)
	}

	// Completion resets the stack: home is the root, back is a no-op.
	stack := f.nav.Stack("dev")
	require.Equal(t, 1, stack.Depth())
	stack.GoBack()
	assert.Equal(t, entity.ScreenFemaleHome, stack.Current().Screen)

	// And the submission went to review.
	require.Len(t, f.pub.published, 1)
	assert.Equal(t, "dev", f.pub.published[0].DeviceID)
	assert.Equal(t, "hi", f.pub.published[0].Language)
}

func TestListenerStepsCannotBeSkipped(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)

	// Avatar before name.
	_, err = f.svc.SubmitAvatar(ctx, "dev", entity.DefaultAvatar())
	assert.ErrorIs(t, err, ErrStepPrecondition)

	// Language before avatar.
	_, err = f.svc.SubmitLanguage(ctx, "dev", "hi")
	assert.ErrorIs(t, err, ErrStepPrecondition)

	// Verification before avatar.
	_, err = f.svc.CompleteVoiceVerification(ctx, "dev", true)
	assert.ErrorIs(t, err, ErrStepPrecondition)

	assert.Equal(t, entity.ScreenFemaleNameSetup, f.nav.Stack("dev").Current().Screen)
}

func TestSubmitAvatarRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)

	_, err = f.svc.SubmitAvatar(ctx, "dev", "🧑")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitLanguageDefaultsToEnglish(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)
	_, err = f.svc.SubmitAvatar(ctx, "dev", "")
	require.NoError(t, err)

	_, err = f.svc.SubmitLanguage(ctx, "dev", "")
	require.NoError(t, err)
	v, _, err := f.store.Get(ctx, "dev", repository.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", v)

	_, err = f.svc.SubmitLanguage(ctx, "dev", "fr")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCompleteVoiceVerificationNeedsRecording(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)
	_, err = f.svc.SubmitAvatar(ctx, "dev", "")
	require.NoError(t, err)
	_, err = f.svc.SubmitLanguage(ctx, "dev", "")
	require.NoError(t, err)

	_, err = f.svc.CompleteVoiceVerification(ctx, "dev", false)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, entity.ScreenAudioVerification, f.nav.Stack("dev").Current().Screen)
	assert.Empty(t, f.pub.published)

	_, found, err := f.store.Get(ctx, "dev", repository.KeyVoiceVerified)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPublishFailureDoesNotBlockCompletion(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	f.pub.err = errors.New("broker down")

	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)
	_, err = f.svc.SubmitAvatar(ctx, "dev", "")
	require.NoError(t, err)
	_, err = f.svc.SubmitLanguage(ctx, "dev", "")
	require.NoError(t, err)

	next, err := f.svc.CompleteVoiceVerification(ctx, "dev", true)
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleHome, next)
}

func TestNilPublisherIsFine(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewProfileStore()
	nav := navigation.NewManager()
	svc := NewOnboardingService(store, nav, nil, testLogger())

	_, err := svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)
	_, err = svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)
	_, err = svc.SubmitAvatar(ctx, "dev", "")
	require.NoError(t, err)
	_, err = svc.SubmitLanguage(ctx, "dev", "")
	require.NoError(t, err)
	_, err = svc.CompleteVoiceVerification(ctx, "dev", true)
	require.NoError(t, err)
}

func TestFailedWriteNeverNavigates(t *testing.T) {
	ctx := context.Background()
	f := newOnboardingFixture()
	_, err := f.svc.SelectRole(ctx, "dev", "female")
	require.NoError(t, err)

	f.store.FailWrites = repository.ErrStorageUnavailable
	_, err = f.svc.SubmitName(ctx, "dev", "Priya")
	assert.ErrorIs(t, err, repository.ErrStorageUnavailable)

	// The stack must still show the failed step's screen.
	assert.Equal(t, entity.ScreenFemaleNameSetup, f.nav.Stack("dev").Current().Screen)

	// Retry after recovery succeeds from the same place.
	f.store.FailWrites = nil
	next, err := f.svc.SubmitName(ctx, "dev", "Priya")
	require.NoError(t, err)
	assert.Equal(t, entity.ScreenFemaleAvatarSetup, next)
}

func TestStepsDelegatesToRolePlan(t *testing.T) {
	f := newOnboardingFixture()

	steps, err := f.svc.Steps(entity.RoleFemale)
	require.NoError(t, err)
	assert.Len(t, steps, 4)

	_, err = f.svc.Steps(entity.Role("other"))
	assert.ErrorIs(t, err, entity.ErrUnknownRole)
}
