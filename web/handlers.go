package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jthomisee/changing-500-sub000/controller"
	"github.com/jthomisee/changing-500-sub000/db"
	"github.com/jthomisee/changing-500-sub000/model"
	"github.com/jthomisee/changing-500-sub000/standings"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, errorResponse{Error: msg})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "changing-500")
	}
}

func listGroupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := ctrl.ListGroups(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, groups)
	}
}

func createGroupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		g, err := ctrl.CreateGroup(r.Context(), req.Name)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		render.JSON(w, http.StatusCreated, g)
	}
}

func getGroupHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := ctrl.GetGroup(r.Context(), chi.URLParam(r, "groupID"))
		if err != nil {
			if errors.Is(err, db.ErrGroupNotFound) {
				renderError(render, w, http.StatusNotFound, "group not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func listMembersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := ctrl.ListMembers(r.Context(), chi.URLParam(r, "groupID"))
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, members)
	}
}

func addMemberHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		u := &model.User{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
		member, err := ctrl.AddMember(r.Context(), chi.URLParam(r, "groupID"), u)
		if err != nil {
			if errors.Is(err, db.ErrGroupNotFound) {
				renderError(render, w, http.StatusNotFound, "group not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusCreated, member)
	}
}

func removeMemberHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, "groupID")
		userID := chi.URLParam(r, "userID")
		if err := ctrl.RemoveMember(r.Context(), groupID, userID); err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

func listGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGames(r.Context(), chi.URLParam(r, "groupID"))
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func upcomingGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.UpcomingGames(r.Context(), chi.URLParam(r, "groupID"))
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func scheduleGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date      string  `json:"date"`
			StartTime string  `json:"startTime"`
			Type      string  `json:"type"`
			BuyIn     float64 `json:"buyIn"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			msg := fmt.Sprintf("unable to parse game date, expected format is YYYY-MM-DD: %v", err)
			renderError(render, w, http.StatusBadRequest, msg)
			return
		}

		gameType, err := model.ParseGameType(req.Type)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		g, err := ctrl.ScheduleGame(r.Context(), chi.URLParam(r, "groupID"), date, req.StartTime, gameType, req.BuyIn)
		if err != nil {
			if errors.Is(err, db.ErrGroupNotFound) {
				renderError(render, w, http.StatusNotFound, "group not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusCreated, g)
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		g, err := ctrl.GetGame(r.Context(), gameID)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		points, err := ctrl.GamePoints(r.Context(), gameID)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := struct {
			Game   *model.Game        `json:"game"`
			Points map[string]float64 `json:"points"`
		}{Game: g, Points: points}
		render.JSON(w, http.StatusOK, resp)
	}
}

func updateRSVPHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"userId"`
			RSVP   string `json:"rsvp"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		rsvp, err := model.ParseRSVPStatus(req.RSVP)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		if err := ctrl.UpdateRSVP(r.Context(), chi.URLParam(r, "gameID"), req.UserID, rsvp); err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

func recordResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Results []model.GameResult `json:"results"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		g, err := ctrl.RecordResults(r.Context(), chi.URLParam(r, "gameID"), req.Results)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func importResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the multipart form. 5 << 20 specifies a maximum upload of 5 MB files.
		r.ParseMultipartForm(5 << 20)

		file, handler, err := r.FormFile("results-file")
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		defer file.Close()

		if handler.Header.Get("Content-Type") != "text/csv" {
			msg := fmt.Sprintf("only CSV files are supported, got %s", handler.Header.Get("Content-Type"))
			renderError(render, w, http.StatusBadRequest, msg)
			return
		}

		g, err := ctrl.ImportResultsCSV(r.Context(), chi.URLParam(r, "gameID"), file)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				renderError(render, w, http.StatusNotFound, "game not found")
			} else {
				renderError(render, w, http.StatusBadRequest, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field, err := standings.ParseSortField(r.URL.Query().Get("sort"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		dir, err := standings.ParseDirection(r.URL.Query().Get("dir"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		rows, err := ctrl.Standings(r.Context(), chi.URLParam(r, "groupID"), field, dir)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, rows)
	}
}
