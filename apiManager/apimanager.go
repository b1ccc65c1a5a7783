package apiManager

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nanisy08/FAZT-I4-Interrogator/support/globals"
)

func ApiManager(rst chan bool) {
	r := mux.NewRouter()
	r.Handle("/info", info())
	r.Handle("/latest", latestData(true))
	r.Handle("/latest/{channel}", latestData(false))
	r.Handle("/previous", previousSession())

	srv := &http.Server{
		Addr:         "0.0.0.0:" + globals.APIport,
		WriteTimeout: time.Second * time.Duration(globals.ServerTimeout),
		ReadTimeout:  time.Second * time.Duration(globals.ServerTimeout),
		IdleTimeout:  time.Second * 3 * time.Duration(globals.ServerTimeout),
		Handler:      r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil {
		}
	}()

	// setting up closure and shutdown
	<-rst
	fmt.Println("Closing apiManager.ApiManager")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Second*time.Duration(globals.ServerTimeout))
	defer cancel()
	_ = srv.Shutdown(ctx)
	rst <- true
}
