package cmd

import (
	"errors"
	"io"

	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/itsmostafa/gocalc/internal/state"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// withSession builds an engine, restoring variables from --state when set,
// runs fn and saves the variables back afterwards.
func withSession(cmd *cobra.Command, fn func(*calc.Engine, logrus.FieldLogger) error) error {
	log := newLogger(cmd.ErrOrStderr())
	opts := []calc.Option{calc.WithLogger(log)}

	var mgr *state.Manager
	var sess *state.Session
	if statePath != "" {
		mgr = state.NewManager(statePath)
		var err error
		sess, err = mgr.Load()
		if err != nil {
			return err
		}
		opts = append(opts, calc.WithSymbols(sess.Symbols()))
		log.WithFields(logrus.Fields{
			"session_id": sess.SessionID,
			"path":       mgr.Path(),
			"variables":  len(sess.Variables),
		}).Debug("Loaded session")
	}

	engine := calc.New(opts...)
	runErr := fn(engine, log)

	if mgr != nil {
		sess.Capture(engine.Symbols())
		if err := mgr.Save(sess); err != nil {
			return errors.Join(runErr, err)
		}
		log.WithField("path", mgr.Path()).Debug("Saved session")
	}
	return runErr
}
