package logger

import "go.uber.org/zap"

// New создаёт sugared-логгер приложения. В debug-режиме используется
// человекочитаемый вывод, иначе — production-конфигурация zap.
func New(debug bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
