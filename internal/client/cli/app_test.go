package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/whattowear/internal/client/client"
	"github.com/dmitrijs2005/whattowear/internal/client/config"
	"github.com/dmitrijs2005/whattowear/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	signupIn   models.SignupInput
	signupPass []byte
	signinMail string
	signinPass []byte
	upd        models.ProfileUpdate
	restored   *models.User
	logoutHit  bool
	err        error
}

func (f *fakeAuth) Signup(_ context.Context, in models.SignupInput, pw []byte) (*models.User, error) {
	f.signupIn, f.signupPass = in, append([]byte(nil), pw...)
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u1", Email: in.Email}, nil
}

func (f *fakeAuth) Signin(_ context.Context, email string, pw []byte) (*models.User, error) {
	f.signinMail, f.signinPass = email, append([]byte(nil), pw...)
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u1", Email: email}, nil
}

func (f *fakeAuth) Restore(context.Context) (*models.User, error) { return f.restored, f.err }

func (f *fakeAuth) Me(context.Context) (*models.User, error) {
	return &models.User{ID: "u1", Name: "Al", Email: "al@x.io"}, f.err
}

func (f *fakeAuth) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.upd = upd
	return &models.User{ID: "u1"}, f.err
}

func (f *fakeAuth) Logout(context.Context) error { f.logoutHit = true; return f.err }
func (f *fakeAuth) Ping(context.Context) error   { return nil }

// fakeItems implements services.ItemService.
type fakeItems struct {
	list       []models.Item
	weather    string
	created    models.NewItem
	uploadPath string
	lastID     string
}

func (f *fakeItems) List(_ context.Context, weather string) ([]models.Item, error) {
	f.weather = weather
	return f.list, nil
}

func (f *fakeItems) Create(_ context.Context, in models.NewItem) (*models.Item, error) {
	f.created = in
	return &models.Item{ID: "i1", Name: in.Name}, nil
}

func (f *fakeItems) UploadImage(_ context.Context, path string) (string, error) {
	f.uploadPath = path
	return "https://cdn/" + path, nil
}

func (f *fakeItems) Delete(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id, Name: "Jacket"}, nil
}

func (f *fakeItems) Like(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id, Likes: []string{"u1"}}, nil
}

func (f *fakeItems) Unlike(_ context.Context, id string) (*models.Item, error) {
	f.lastID = id
	return &models.Item{ID: id}, nil
}

// stubInputs answers prompts in order and returns password for getPassword.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(auth *fakeAuth, items *fakeItems) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: auth, itemService: items, out: &out}, &out
}

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	a, err := NewApp(cfg)
	require.NoError(t, err)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(guest)", a.getStatus())

	cfg.ServerURL = "ftp://nope"
	_, err = NewApp(cfg)
	require.Error(t, err)
}

func TestSignup(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeItems{})
	stubInputs(t, []string{"Al", "https://a/b.png", "al@x.io"}, []byte("password1"))

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, models.SignupInput{Name: "Al", Avatar: "https://a/b.png", Email: "al@x.io"}, auth.signupIn)
	assert.Equal(t, "password1", string(auth.signupPass))
	assert.Contains(t, out.String(), "al@x.io created")
	assert.False(t, a.isLoggedIn())
}

func TestSignin_SetsUser(t *testing.T) {
	auth := &fakeAuth{}
	a, _ := newTestApp(auth, &fakeItems{})
	stubInputs(t, []string{"al@x.io"}, []byte("secret"))

	require.NoError(t, a.Signin(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(al@x.io)", a.getStatus())
	assert.Equal(t, "secret", string(auth.signinPass))
}

func TestSignin_Failure(t *testing.T) {
	auth := &fakeAuth{err: &client.APIError{Status: http.StatusUnauthorized, Message: "Incorrect email or password"}}
	a, _ := newTestApp(auth, &fakeItems{})
	stubInputs(t, []string{"al@x.io"}, []byte("bad"))

	err := a.Signin(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", describe(err))
	assert.False(t, a.isLoggedIn())
}

func TestUpdate(t *testing.T) {
	auth := &fakeAuth{}
	a, _ := newTestApp(auth, &fakeItems{})

	stubInputs(t, []string{"Bob", ""}, nil)
	require.NoError(t, a.Update(context.Background()))
	require.NotNil(t, auth.upd.Name)
	assert.Equal(t, "Bob", *auth.upd.Name)
	assert.Nil(t, auth.upd.Avatar)

	stubInputs(t, []string{"", ""}, nil)
	require.Error(t, a.Update(context.Background()))
}

func TestMeAndLogout(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeItems{})

	require.NoError(t, a.Me(context.Background()))
	assert.Contains(t, out.String(), "al@x.io")
	assert.True(t, a.isLoggedIn())

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.logoutHit)
	assert.False(t, a.isLoggedIn())
}

func TestItems_MarksOwnLikes(t *testing.T) {
	items := &fakeItems{list: []models.Item{
		{ID: "i1", Name: "Jacket", Likes: []string{"u1"}},
		{ID: "i2", Name: "Shorts"},
	}}
	a, out := newTestApp(&fakeAuth{}, items)
	a.user = &models.User{ID: "u1"}

	require.NoError(t, a.Items(context.Background(), []string{"cold"}))
	assert.Equal(t, "cold", items.weather)
	assert.Contains(t, out.String(), "* i1")
	assert.Contains(t, out.String(), "  i2")
}

func TestItems_Empty(t *testing.T) {
	a, out := newTestApp(&fakeAuth{}, &fakeItems{})
	require.NoError(t, a.Items(context.Background(), nil))
	assert.Contains(t, out.String(), "No items")
}

func TestAdd_UploadsLocalFile(t *testing.T) {
	items := &fakeItems{}
	a, out := newTestApp(&fakeAuth{}, items)
	stubInputs(t, []string{"Jacket", "cold", "@coat.jpg"}, nil)

	require.NoError(t, a.Add(context.Background()))
	assert.Equal(t, "coat.jpg", items.uploadPath)
	assert.Equal(t, models.NewItem{Name: "Jacket", Weather: "cold", ImageURL: "https://cdn/coat.jpg"}, items.created)
	assert.Contains(t, out.String(), "Added i1")
}

func TestAdd_WithURL(t *testing.T) {
	items := &fakeItems{}
	a, _ := newTestApp(&fakeAuth{}, items)
	stubInputs(t, []string{"Jacket", "cold", "https://x/y.jpg"}, nil)

	require.NoError(t, a.Add(context.Background()))
	assert.Empty(t, items.uploadPath)
	assert.Equal(t, "https://x/y.jpg", items.created.ImageURL)
}

func TestIDCommands(t *testing.T) {
	items := &fakeItems{}
	a, out := newTestApp(&fakeAuth{}, items)
	ctx := context.Background()

	require.ErrorIs(t, a.Delete(ctx, nil), errUsageID)
	require.ErrorIs(t, a.Like(ctx, []string{"a", "b"}), errUsageID)
	require.ErrorIs(t, a.Unlike(ctx, nil), errUsageID)
	require.Error(t, a.Upload(ctx, nil))

	require.NoError(t, a.Like(ctx, []string{"i9"}))
	assert.Equal(t, "i9", items.lastID)
	assert.Contains(t, out.String(), "i9 now has 1 like(s)")

	require.NoError(t, a.Unlike(ctx, []string{"i8"}))
	assert.Contains(t, out.String(), "i8 now has 0 like(s)")

	require.NoError(t, a.Delete(ctx, []string{"i7"}))
	assert.Contains(t, out.String(), "Deleted i7 (Jacket)")

	require.NoError(t, a.Upload(ctx, []string{"pic.png"}))
	assert.Contains(t, out.String(), "Uploaded: https://cdn/pic.png")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Item not found", describe(&client.APIError{Status: 404, Message: "Item not found"}))
	assert.Equal(t, "server unavailable", describe(errors.Join(client.ErrUnavailable)))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}
