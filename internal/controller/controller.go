package controller

import (
	appcontext "github.com/KaiserXLabs/kxl-gmail-signature-update/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index     *IndexController
	Signature *SignatureController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:     &IndexController{baseController: bc},
		Signature: &SignatureController{baseController: bc},
	}
}
