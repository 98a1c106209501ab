package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Ski Station API",
        "description": "Skiers, subscriptions, courses, instructors, pistes and weekly course registrations.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Skiers",
            "description": "Skier records and their links"
        },
        {
            "name": "Courses",
            "description": "Course catalogue"
        },
        {
            "name": "Instructors",
            "description": "Instructors and course assignments"
        },
        {
            "name": "Pistes",
            "description": "Runs of the station"
        },
        {
            "name": "Registrations",
            "description": "Weekly course registrations"
        },
        {
            "name": "Subscriptions",
            "description": "Season passes"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check against the database and cache",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is unavailable"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/skier/add": {
            "post": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Create a skier",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SkierRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/addAndAssign/{numCourse}": {
            "post": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Create a skier and book the listed weeks into a course",
                "parameters": [
                    {
                        "name": "numCourse",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SkierRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/assignToSub/{numSkier}/{numSub}": {
            "put": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Link a skier to a subscription",
                "parameters": [
                    {
                        "name": "numSkier",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "numSub",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/assignToPiste/{numSkier}/{numPiste}": {
            "put": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Add a piste to a skier",
                "parameters": [
                    {
                        "name": "numSkier",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "numPiste",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/getSkiersBySubscription": {
            "get": {
                "tags": [
                    "Skiers"
                ],
                "summary": "List skiers by subscription type",
                "parameters": [
                    {
                        "name": "typeSubscription",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "enum": [
                            "MONTHLY",
                            "SEMESTRIEL",
                            "ANNUAL"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/get/{id}": {
            "get": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Get a skier",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/delete/{id}": {
            "delete": {
                "tags": [
                    "Skiers"
                ],
                "summary": "Delete a skier",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/skier/all": {
            "get": {
                "tags": [
                    "Skiers"
                ],
                "summary": "List skiers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/course/add": {
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Create a course",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CourseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/course/update": {
            "put": {
                "tags": [
                    "Courses"
                ],
                "summary": "Replace a course",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/course/get/{id}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Get a course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/course/all": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/instructor/add": {
            "post": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Create an instructor",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/InstructorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/instructor/update": {
            "put": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Replace an instructor",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/InstructorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/instructor/get/{id}": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Get an instructor",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/instructor/all": {
            "get": {
                "tags": [
                    "Instructors"
                ],
                "summary": "List instructors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/instructor/addAndAssignToCourse/{numCourse}": {
            "put": {
                "tags": [
                    "Instructors"
                ],
                "summary": "Create an instructor teaching an existing course",
                "parameters": [
                    {
                        "name": "numCourse",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/InstructorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/piste/add": {
            "post": {
                "tags": [
                    "Pistes"
                ],
                "summary": "Create a piste",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PisteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/piste/get/{id}": {
            "get": {
                "tags": [
                    "Pistes"
                ],
                "summary": "Get a piste",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/piste/delete/{id}": {
            "delete": {
                "tags": [
                    "Pistes"
                ],
                "summary": "Delete a piste",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/piste/all": {
            "get": {
                "tags": [
                    "Pistes"
                ],
                "summary": "List pistes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/registration/addAndAssignToSkier/{numSkieur}": {
            "put": {
                "tags": [
                    "Registrations"
                ],
                "summary": "Create a registration for a skier without a course",
                "parameters": [
                    {
                        "name": "numSkieur",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegistrationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/registration/assignToCourse/{numRegis}/{numCourse}": {
            "put": {
                "tags": [
                    "Registrations"
                ],
                "summary": "Bind an existing registration to a course",
                "parameters": [
                    {
                        "name": "numRegis",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "numCourse",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Registration rejected",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/registration/addAndAssignToSkierAndCourse/{numSkieur}/{numCourse}": {
            "put": {
                "tags": [
                    "Registrations"
                ],
                "summary": "Register a skier to a course for a week",
                "parameters": [
                    {
                        "name": "numSkieur",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "numCourse",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegistrationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Registration rejected",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/registration/numWeeks/{numInstructor}/{support}": {
            "get": {
                "tags": [
                    "Registrations"
                ],
                "summary": "List weeks taught by an instructor for a support",
                "parameters": [
                    {
                        "name": "numInstructor",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "support",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "enum": [
                            "SKI",
                            "SNOWBOARD"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/registration/export/{numCourse}": {
            "get": {
                "tags": [
                    "Registrations"
                ],
                "summary": "Export the registration roster of a course",
                "parameters": [
                    {
                        "name": "numCourse",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Roster document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "produces": [
                    "text/csv",
                    "application/pdf"
                ]
            }
        },
        "/subscription/add": {
            "post": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "Create a subscription",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubscriptionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/subscription/update": {
            "put": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "Replace a subscription",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubscriptionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/subscription/get/{id}": {
            "get": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "Get a subscription",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/subscription/all": {
            "get": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "List subscriptions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/subscription/all/{typeSub}": {
            "get": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "List subscriptions of a plan type ordered by start date",
                "parameters": [
                    {
                        "name": "typeSub",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "enum": [
                            "MONTHLY",
                            "SEMESTRIEL",
                            "ANNUAL"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/subscription/all/{date1}/{date2}": {
            "get": {
                "tags": [
                    "Subscriptions"
                ],
                "summary": "List subscriptions starting between two dates",
                "parameters": [
                    {
                        "name": "date1",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "format": "date"
                    },
                    {
                        "name": "date2",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "format": "date"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "SubscriptionRequest": {
            "type": "object",
            "properties": {
                "num_sub": {
                    "type": "integer"
                },
                "type_sub": {
                    "type": "string",
                    "enum": [
                        "MONTHLY",
                        "SEMESTRIEL",
                        "ANNUAL"
                    ]
                },
                "start_date": {
                    "type": "string",
                    "format": "date"
                },
                "price": {
                    "type": "number"
                }
            },
            "required": [
                "type_sub",
                "start_date"
            ]
        },
        "RegistrationRequest": {
            "type": "object",
            "properties": {
                "num_week": {
                    "type": "integer",
                    "minimum": 1
                }
            },
            "required": [
                "num_week"
            ]
        },
        "SkierRequest": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string",
                    "format": "date"
                },
                "city": {
                    "type": "string"
                },
                "subscription": {
                    "$ref": "#/definitions/SubscriptionRequest"
                },
                "registrations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RegistrationRequest"
                    }
                }
            },
            "required": [
                "first_name",
                "last_name"
            ]
        },
        "CourseRequest": {
            "type": "object",
            "properties": {
                "num_course": {
                    "type": "integer"
                },
                "level": {
                    "type": "integer"
                },
                "type_course": {
                    "type": "string",
                    "enum": [
                        "INDIVIDUAL",
                        "COLLECTIVE_CHILDREN",
                        "COLLECTIVE_ADULT"
                    ]
                },
                "support": {
                    "type": "string",
                    "enum": [
                        "SKI",
                        "SNOWBOARD"
                    ]
                },
                "price": {
                    "type": "number"
                },
                "time_slot": {
                    "type": "integer"
                }
            },
            "required": [
                "type_course",
                "support"
            ]
        },
        "InstructorRequest": {
            "type": "object",
            "properties": {
                "num_instructor": {
                    "type": "integer"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "date_of_hire": {
                    "type": "string",
                    "format": "date"
                },
                "support": {
                    "type": "string",
                    "enum": [
                        "SKI",
                        "SNOWBOARD"
                    ]
                }
            },
            "required": [
                "first_name",
                "last_name"
            ]
        },
        "PisteRequest": {
            "type": "object",
            "properties": {
                "name_piste": {
                    "type": "string"
                },
                "color": {
                    "type": "string",
                    "enum": [
                        "GREEN",
                        "BLUE",
                        "RED",
                        "BLACK"
                    ]
                },
                "length": {
                    "type": "integer"
                },
                "slope": {
                    "type": "integer"
                }
            },
            "required": [
                "name_piste",
                "color"
            ]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
