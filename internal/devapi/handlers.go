package devapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/trainerhub/internal/client/models"
)

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func (s *Server) login(c echo.Context) error {
	var req models.LoginCredentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}

	u, err := s.db.authenticate(req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return s.issue(c, http.StatusOK, u)
}

func (s *Server) register(c echo.Context) error {
	var req models.RegisterData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}

	u, err := s.db.createUser(req.Name, req.Email, req.Password, req.Phone, req.Role, "")
	if err != nil {
		return httpError(err)
	}
	return s.issue(c, http.StatusCreated, u)
}

func (s *Server) me(c echo.Context) error {
	u, ok := s.db.user(callerClaims(c).UserID)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) listStudents(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.students(callerClaims(c).UserID))
}

func (s *Server) getStudent(c echo.Context) error {
	st, err := s.db.student(callerClaims(c).UserID, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (s *Server) createStudent(c echo.Context) error {
	var req models.CreateStudentData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	check := models.RegisterData{Name: req.Name, Email: req.Email, Password: req.Password, Role: models.RoleStudent}
	if err := check.Validate(); err != nil {
		return badRequest(err)
	}

	u, err := s.db.createUser(req.Name, req.Email, req.Password, req.Phone, models.RoleStudent, callerClaims(c).UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, models.Student{User: u, Count: &models.StudentCount{}})
}

func (s *Server) updateStudent(c echo.Context) error {
	var req models.UpdateStudentData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Password != nil && len(*req.Password) < models.MinPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password too short")
	}

	st, err := s.db.updateStudent(callerClaims(c).UserID, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (s *Server) deleteStudent(c echo.Context) error {
	if err := s.db.deleteStudent(callerClaims(c).UserID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listExercises(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.listExercises(c.QueryParam("muscleGroup")))
}

func (s *Server) getExercise(c echo.Context) error {
	e, err := s.db.exercise(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, e)
}

func (s *Server) createExercise(c echo.Context) error {
	var req models.CreateExerciseData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return c.JSON(http.StatusCreated, s.db.createExercise(req))
}

func (s *Server) updateExercise(c echo.Context) error {
	var req models.UpdateExerciseData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name cannot be empty")
	}

	e, err := s.db.updateExercise(c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, e)
}

func (s *Server) deleteExercise(c echo.Context) error {
	if err := s.db.deleteExercise(c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
