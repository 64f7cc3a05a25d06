package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bets/internal/common/identity/tools/token"
	"bets/internal/repositories/identity"
	"bets/internal/repositories/mocks"
	"bets/internal/server/identity/verifier"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	// регистрирую мок хранилища учетных записей
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockIdentifier(ctrl)

	tokens := token.New("test secret key")
	v := verifier.New(tokens, m)

	user := identity.Principal{
		ID:    "success-id",
		Email: "a@x.com",
		Role:  "user",
	}

	// Test. successful authentication ---------------------------------------
	tokenSuccess, err := tokens.BuildJWT(user.ID, user.Email, user.Email)
	require.NoError(t, err)
	m.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, true, nil)

	// Test. token signed with wrong key -------------------------------------
	wrongTokens := token.New("wrong secret key")
	tokenWrongKey, err := wrongTokens.BuildJWT(user.ID, user.Email, user.Email)
	require.NoError(t, err)

	// Test. user deleted after token was issued -----------------------------
	goneID := "gone-id"
	tokenGone, err := tokens.BuildJWT(goneID, "gone@x.com", "gone@x.com")
	require.NoError(t, err)
	m.EXPECT().FindByID(gomock.Any(), goneID).Return(identity.Principal{}, false, nil)

	// Test. storage failure --------------------------------------------------
	failID := "fail-id"
	tokenFail, err := tokens.BuildJWT(failID, "fail@x.com", "fail@x.com")
	require.NoError(t, err)
	m.EXPECT().FindByID(gomock.Any(), failID).Return(identity.Principal{}, false, errors.New("storage is down"))

	type request struct {
		token     string
		setheader bool
	}
	type want struct {
		id     string
		status int
	}
	tests := []struct {
		name string
		req  request
		want want
	}{
		{
			name: "successful authentication",
			req: request{
				token:     tokenSuccess,
				setheader: true,
			},
			want: want{
				id:     user.ID,
				status: 200,
			},
		},
		{
			name: "header is not set",
			req: request{
				token:     "",
				setheader: false,
			},
			want: want{
				id:     "",
				status: 401,
			},
		},
		{
			name: "token signed with wrong key",
			req: request{
				token:     tokenWrongKey,
				setheader: true,
			},
			want: want{
				id:     "",
				status: 401,
			},
		},
		{
			name: "user from token no longer exists",
			req: request{
				token:     tokenGone,
				setheader: true,
			},
			want: want{
				id:     "",
				status: 401,
			},
		},
		{
			name: "storage failure",
			req: request{
				token:     tokenFail,
				setheader: true,
			},
			want: want{
				id:     "",
				status: 500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHandler := func(res http.ResponseWriter, req *http.Request) {
				// извлекаю учетную запись пользователя из контекста
				got, ok := req.Context().Value(PrincipalKey).(*identity.Principal)
				require.Equal(t, true, ok)
				assert.Equal(t, tt.want.id, got.ID)

				// извлекаю id пользователя из контекста
				id, ok := req.Context().Value(UserIDKey).(string)
				require.Equal(t, true, ok)
				assert.Equal(t, tt.want.id, id)

				res.WriteHeader(http.StatusOK)
			}

			r := chi.NewRouter()
			r.Get("/protected", Middleware(v)(http.HandlerFunc(testHandler)))

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.req.setheader {
				request.Header.Set("Authorization", "Bearer "+tt.req.token)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, request)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.want.status, res.StatusCode)
		})
	}
}
