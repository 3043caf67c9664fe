package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"edu-perfil/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Start(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewSessionService(repo, fixedClock(testNow), nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return strings.HasPrefix(s.SesionID, "SES_") && s.Estado == domain.SessionEnProgreso &&
			s.CantidadEjercicios == 5 && s.FechaInicio.Equal(testNow)
	})).Return(nil)

	got, err := svc.Start(context.Background(), StartSessionInput{StudentID: "EST1", Course: domain.CourseVerbal, Planned: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.CourseVerbal, got.Curso)
	repo.AssertExpectations(t)

	failing := new(MockSessionRepository)
	failing.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	_, err = NewSessionService(failing, nil, nil).Start(context.Background(), StartSessionInput{StudentID: "EST1", Course: domain.CourseVerbal, Planned: 5})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}
