package controller

import (
	"context"
	"log"

	"verify-server/model"
	"verify-server/proto"
	"verify-server/service"
)

// VerifyController exposes the issuance flow over gRPC.
type VerifyController struct {
	proto.UnimplementedVerifyServiceServer
	verificationSvc *service.VerificationService
}

func NewVerifyController(verificationSvc *service.VerificationService) *VerifyController {
	return &VerifyController{verificationSvc: verificationSvc}
}

// GetVerifyCode issues a fresh code for the requested email. The caller
// always gets a structured response carrying one of the model.ErrorCode
// values; a panic anywhere below maps to ErrException, not a transport
// fault.
func (c *VerifyController) GetVerifyCode(ctx context.Context, req *proto.GetVerifyReq) (rsp *proto.GetVerifyRsp, err error) {
	log.Printf("GetVerifyCode called, email is %s", req.GetEmail())

	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered in GetVerifyCode: %v", r)
			rsp = &proto.GetVerifyRsp{
				Email: req.GetEmail(),
				Error: int32(model.ErrException),
			}
			err = nil
		}
	}()

	outcome := c.verificationSvc.IssueCode(ctx, req.GetEmail())
	return &proto.GetVerifyRsp{
		Email: req.GetEmail(),
		Error: int32(outcome),
	}, nil
}
