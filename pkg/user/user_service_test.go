package user

import (
	"ShareBite-Backend/domain"
	"ShareBite-Backend/internal/testutil"
	"context"
	"mime/multipart"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	uploads []string
	err     error
}

func (f *fakeS3) UploadFile(_ context.Context, fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := folder + "/" + fileName + ".png"
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

func newTestUserService(t *testing.T, s3 *fakeS3) UserService {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	return NewUserService(NewUserRepository(testutil.NewSQLiteDB(t)), s3, log)
}

func TestCreateUserIsIdempotent(t *testing.T) {
	s := newTestUserService(t, &fakeS3{})
	ctx := context.Background()

	first, err := s.CreateUser(ctx, domain.CreateUserRequest{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := s.CreateUser(ctx, domain.CreateUserRequest{Name: "Other", Email: "ann@x.io"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "Ann", second.User.Name)
}

func TestUpdateUserRequiresSelf(t *testing.T) {
	s := newTestUserService(t, &fakeS3{})
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.CreateUserRequest{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)

	_, err = s.UpdateUser(ctx, domain.UpdateUserRequest{Email: "ann@x.io", Name: "Hacked"}, "mallory@x.io")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := s.UpdateUser(ctx, domain.UpdateUserRequest{Email: "ann@x.io", Name: "Annie"}, "ann@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Annie", got.Name)
}

func TestUpdateUserMissing(t *testing.T) {
	s := newTestUserService(t, &fakeS3{})

	_, err := s.UpdateUser(context.Background(), domain.UpdateUserRequest{Email: "ghost@x.io", Name: "G"}, "ghost@x.io")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUploadAvatar(t *testing.T) {
	s3 := &fakeS3{}
	s := newTestUserService(t, s3)
	ctx := context.Background()

	_, err := s.UploadAvatar(ctx, domain.UploadAvatarRequest{Image: &multipart.FileHeader{}}, "ghost@x.io")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	created, err := s.CreateUser(ctx, domain.CreateUserRequest{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)

	got, err := s.UploadAvatar(ctx, domain.UploadAvatarRequest{Image: &multipart.FileHeader{}}, "ann@x.io")
	require.NoError(t, err)
	require.Len(t, s3.uploads, 1)
	assert.Equal(t, "avatars/avatar-"+created.User.ID+".png", s3.uploads[0])
	assert.Equal(t, "https://bucket.example/"+s3.uploads[0], got.Image)
}

func TestUploadAvatarStorageDisabled(t *testing.T) {
	s := newTestUserService(t, &fakeS3{err: domain.ErrStorageDisabled})
	ctx := context.Background()

	_, err := s.CreateUser(ctx, domain.CreateUserRequest{Name: "Ann", Email: "ann@x.io"})
	require.NoError(t, err)

	_, err = s.UploadAvatar(ctx, domain.UploadAvatarRequest{Image: &multipart.FileHeader{}}, "ann@x.io")
	assert.ErrorIs(t, err, domain.ErrStorageDisabled)
}
