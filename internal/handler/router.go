package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups the endpoint handlers mounted by RegisterRoutes.
type Handlers struct {
	Skier        *SkierHandler
	Course       *CourseHandler
	Instructor   *InstructorHandler
	Piste        *PisteHandler
	Registration *RegistrationHandler
	Subscription *SubscriptionHandler
}

// RegisterRoutes mounts the REST surface on r.
func RegisterRoutes(r gin.IRouter, h Handlers) {
	skier := r.Group("/skier")
	skier.POST("/add", h.Skier.Add)
	skier.POST("/addAndAssign/:numCourse", h.Skier.AddAndAssignToCourse)
	skier.PUT("/assignToSub/:numSkier/:numSub", h.Skier.AssignToSubscription)
	skier.PUT("/assignToPiste/:numSkier/:numPiste", h.Skier.AssignToPiste)
	skier.GET("/getSkiersBySubscription", h.Skier.ListBySubscriptionType)
	skier.GET("/get/:id", h.Skier.Get)
	skier.DELETE("/delete/:id", h.Skier.Delete)
	skier.GET("/all", h.Skier.List)

	course := r.Group("/course")
	course.POST("/add", h.Course.Add)
	course.PUT("/update", h.Course.Update)
	course.GET("/get/:id", h.Course.Get)
	course.GET("/all", h.Course.List)

	instructor := r.Group("/instructor")
	instructor.POST("/add", h.Instructor.Add)
	instructor.PUT("/update", h.Instructor.Update)
	instructor.GET("/get/:id", h.Instructor.Get)
	instructor.GET("/all", h.Instructor.List)
	instructor.PUT("/addAndAssignToCourse/:numCourse", h.Instructor.AddAndAssignToCourse)

	piste := r.Group("/piste")
	piste.POST("/add", h.Piste.Add)
	piste.GET("/get/:id", h.Piste.Get)
	piste.DELETE("/delete/:id", h.Piste.Delete)
	piste.GET("/all", h.Piste.List)

	registration := r.Group("/registration")
	registration.PUT("/addAndAssignToSkier/:numSkieur", h.Registration.AddAndAssignToSkier)
	registration.PUT("/assignToCourse/:numRegis/:numCourse", h.Registration.AssignToCourse)
	registration.PUT("/addAndAssignToSkierAndCourse/:numSkieur/:numCourse", h.Registration.AddAndAssignToSkierAndCourse)
	registration.GET("/numWeeks/:numInstructor/:support", h.Registration.WeeksByInstructorAndSupport)
	registration.GET("/export/:numCourse", h.Registration.ExportRoster)

	subscription := r.Group("/subscription")
	subscription.POST("/add", h.Subscription.Add)
	subscription.PUT("/update", h.Subscription.Update)
	subscription.GET("/get/:id", h.Subscription.Get)
	subscription.GET("/all", h.Subscription.List)
	subscription.GET("/all/:"+SubscriptionFilterParam, h.Subscription.ListByType)
	subscription.GET("/all/:"+SubscriptionFilterParam+"/:date2", h.Subscription.ListByStartDateRange)
}
