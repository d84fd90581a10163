package redirect

// legacyPaths are URLs from the previous site that now point at the home page.
var legacyPaths = []string{
	"/virtual-office-in-mumbai",
	"/virtual-office-mumbai",
	"/coworking-space-in-mumbai",
	"/gst-registration-in-mumbai",
	"/company-registration-in-mumbai",
	"/virtual-office-in-pune",
	"/virtual-office-pune",
	"/coworking-space-in-pune",
	"/gst-registration-in-pune",
	"/company-registration-in-pune",
	"/virtual-office-in-delhi",
	"/virtual-office-delhi",
	"/coworking-space-in-delhi",
	"/gst-registration-in-delhi",
	"/company-registration-in-delhi",
	"/virtual-office-in-bangalore",
	"/virtual-office-bangalore",
	"/coworking-space-in-bangalore",
	"/gst-registration-in-bangalore",
	"/company-registration-in-bangalore",
	"/virtual-office-in-hyderabad",
	"/virtual-office-hyderabad",
	"/coworking-space-in-hyderabad",
	"/gst-registration-in-hyderabad",
	"/company-registration-in-hyderabad",
	"/virtual-office-in-chennai",
	"/virtual-office-chennai",
	"/coworking-space-in-chennai",
	"/gst-registration-in-chennai",
	"/company-registration-in-chennai",
	"/virtual-office-in-kolkata",
	"/virtual-office-kolkata",
	"/coworking-space-in-kolkata",
	"/gst-registration-in-kolkata",
	"/company-registration-in-kolkata",
	"/virtual-office-in-ahmedabad",
	"/virtual-office-ahmedabad",
	"/coworking-space-in-ahmedabad",
	"/gst-registration-in-ahmedabad",
	"/company-registration-in-ahmedabad",
	"/virtual-office-in-gurgaon",
	"/virtual-office-gurgaon",
	"/coworking-space-in-gurgaon",
	"/gst-registration-in-gurgaon",
	"/company-registration-in-gurgaon",
	"/virtual-office-in-noida",
	"/virtual-office-noida",
	"/coworking-space-in-noida",
	"/gst-registration-in-noida",
	"/company-registration-in-noida",
	"/amazon-seller-registration",
	"/amazon-account-management",
	"/amazon-product-listing",
	"/amazon-advertising-services",
	"/flipkart-seller-registration",
	"/flipkart-account-management",
	"/flipkart-product-listing",
	"/flipkart-advertising-services",
	"/meesho-seller-registration",
	"/meesho-account-management",
	"/meesho-product-listing",
	"/meesho-advertising-services",
	"/myntra-seller-registration",
	"/myntra-account-management",
	"/myntra-product-listing",
	"/myntra-advertising-services",
	"/ajio-seller-registration",
	"/ajio-account-management",
	"/ajio-product-listing",
	"/ajio-advertising-services",
	"/jiomart-seller-registration",
	"/jiomart-account-management",
	"/jiomart-product-listing",
	"/jiomart-advertising-services",
	"/snapdeal-seller-registration",
	"/snapdeal-account-management",
	"/snapdeal-product-listing",
	"/snapdeal-advertising-services",
	"/nykaa-seller-registration",
	"/nykaa-account-management",
	"/nykaa-product-listing",
	"/nykaa-advertising-services",
	"/tata-cliq-seller-registration",
	"/tata-cliq-account-management",
	"/tata-cliq-product-listing",
	"/tata-cliq-advertising-services",
	"/paytm-mall-seller-registration",
	"/paytm-mall-account-management",
	"/paytm-mall-product-listing",
	"/paytm-mall-advertising-services",
	"/about-us.html",
	"/contact-us.html",
	"/index.html",
	"/index.php",
	"/home",
	"/home-2",
	"/services.html",
	"/pricing-old",
	"/plans",
	"/virtual-office-plans",
	"/business-address-plans",
	"/mail-handling",
	"/meeting-rooms",
	"/day-office",
	"/hot-desk",
	"/dedicated-desk",
	"/cabin-space",
	"/ecommerce-services",
	"/marketplace-management",
	"/catalog-management",
	"/brand-registry",
	"/trademark-registration",
	"/fssai-license",
	"/iec-code-registration",
	"/msme-registration",
	"/blog",
	"/blog/what-is-a-virtual-office",
	"/blog/gst-registration-with-virtual-office",
	"/blog/how-to-sell-on-amazon-india",
	"/blog/flipkart-seller-fees-explained",
	"/blog/virtual-office-vs-coworking",
	"/blog/benefits-of-virtual-office-for-startups",
	"/blog/category/ecommerce",
	"/blog/category/virtual-office",
	"/blog/page/2",
	"/blog/page/3",
	"/careers",
	"/career",
	"/team",
	"/testimonials",
	"/reviews",
	"/faq",
	"/faqs",
	"/privacy-policy.html",
	"/terms-and-conditions.html",
	"/refund-policy.html",
	"/sitemap.html",
	"/thank-you",
	"/thankyou",
	"/lp/virtual-office",
	"/lp/amazon-seller",
	"/offer",
	"/diwali-offer",
	"/partner-with-us",
	"/referral-program",
	"/wp-login.php",
	"/wp-admin",
	"/feed",
	"/comments/feed",
}
